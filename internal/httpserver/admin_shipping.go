package httpserver

import (
	"net/http"

	"velaluz/internal/domain"
	shippingsvc "velaluz/internal/service/shipping"

	"github.com/gin-gonic/gin"
)

func listAdminShipping(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		methods, err := svc.ListAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

func createShipping(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m domain.ShippingMethod
		if err := c.ShouldBindJSON(&m); err != nil {
			writeBadRequest(c, err)
			return
		}
		created, err := svc.Create(c.Request.Context(), m)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateShipping(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m domain.ShippingMethod
		if err := c.ShouldBindJSON(&m); err != nil {
			writeBadRequest(c, err)
			return
		}
		m.ID = c.Param("id")
		updated, err := svc.Update(c.Request.Context(), m)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteShipping(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
