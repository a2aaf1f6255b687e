package httpserver

import (
	"net/http"

	productsvc "velaluz/internal/service/product"

	"github.com/gin-gonic/gin"
)

func listShopProducts(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListShop(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getShopProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
