package httpserver

import (
	"net/http"
	"strconv"

	"velaluz/internal/domain"
	ordersvc "velaluz/internal/service/order"

	"github.com/gin-gonic/gin"
)

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listAdminOrders(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func createAdminOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var o domain.Order
		if err := c.ShouldBindJSON(&o); err != nil {
			writeBadRequest(c, err)
			return
		}
		created, err := svc.CreateManual(c.Request.Context(), o)
		if err != nil {
			writeBadRequest(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateOrderStatus(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}
		order, err := svc.ChangeStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func toggleInvoiceStatus(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		issued, err := strconv.ParseBool(c.Query("issued"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "issued query param required"})
			return
		}
		if err := svc.SetInvoiceIssued(c.Request.Context(), c.Param("id"), issued); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
