package httpserver

import (
	"net/http"

	customerrepo "velaluz/internal/repository/customer"
	customersvc "velaluz/internal/service/customer"
	ordersvc "velaluz/internal/service/order"

	"github.com/gin-gonic/gin"
)

func listShopOrders(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("customerEmail")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customerEmail required"})
			return
		}
		orders, err := svc.ListByCustomerEmail(c.Request.Context(), email)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getShopOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type profileRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	NIF     *string `json:"nif"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	ZipCode *string `json:"zipCode"`
}

func updateProfile(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}
		customer, err := svc.UpdateProfile(c.Request.Context(), req.Email, customerrepo.UpdateProfileInput{
			Name:    req.Name,
			Phone:   req.Phone,
			NIF:     req.NIF,
			Address: req.Address,
			City:    req.City,
			ZipCode: req.ZipCode,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}
