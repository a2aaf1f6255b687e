package httpserver

import (
	"net/http"

	cartsvc "velaluz/internal/service/cart"
	checkoutsvc "velaluz/internal/service/checkout"
	productsvc "velaluz/internal/service/product"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func getCart(checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, checkout.Summarize(c.Request.Context(), sessionID(c)))
	}
}

func addCartItem(carts *cartsvc.Service, checkout *checkoutsvc.Service, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		ctx := c.Request.Context()
		product, err := products.Get(ctx, req.ProductID)
		if err != nil {
			writeError(c, err)
			return
		}
		if _, err := carts.AddItem(ctx, sessionID(c), *product, req.Quantity); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, checkout.Summarize(ctx, sessionID(c)))
	}
}

func updateCartItem(carts *cartsvc.Service, checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}
		ctx := c.Request.Context()
		if _, err := carts.UpdateQuantity(ctx, sessionID(c), c.Param("productId"), req.Quantity); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, checkout.Summarize(ctx, sessionID(c)))
	}
}

func removeCartItem(carts *cartsvc.Service, checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, err := carts.RemoveItem(ctx, sessionID(c), c.Param("productId")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, checkout.Summarize(ctx, sessionID(c)))
	}
}

func clearCart(carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context(), sessionID(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
