package httpserver

import (
	"net/http"

	"velaluz/internal/domain"
	productsvc "velaluz/internal/service/product"

	"github.com/gin-gonic/gin"
)

func listAdminProducts(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListAdmin(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getAdminProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBadRequest(c, err)
			return
		}
		created, err := svc.Create(c.Request.Context(), p)
		if err != nil {
			writeBadRequest(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBadRequest(c, err)
			return
		}
		p.ID = c.Param("id")
		updated, err := svc.Update(c.Request.Context(), p)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
