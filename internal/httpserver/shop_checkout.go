package httpserver

import (
	"net/http"

	checkoutsvc "velaluz/internal/service/checkout"
	shippingsvc "velaluz/internal/service/shipping"

	"github.com/gin-gonic/gin"
)

type selectShippingRequest struct {
	MethodID string `json:"methodId" binding:"required"`
}

type confirmRequest struct {
	Customer struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone" binding:"required"`
		NIF     string `json:"nif"`
		Address string `json:"address" binding:"required"`
		City    string `json:"city" binding:"required"`
		ZipCode string `json:"zipCode" binding:"required"`

		BillingSameAsShipping bool   `json:"billingSameAsShipping"`
		BillingAddress        string `json:"billingAddress"`
		BillingCity           string `json:"billingCity"`
		BillingZipCode        string `json:"billingZipCode"`

		SaveToProfile bool `json:"saveToProfile"`
	} `json:"customer" binding:"required"`
	Payment struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	} `json:"payment" binding:"required"`
	Gift *struct {
		Message  string `json:"message"`
		FromName string `json:"fromName"`
		ToName   string `json:"toName"`
	} `json:"gift"`
}

func listActiveShipping(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ActiveMethods(c.Request.Context()))
	}
}

func selectShipping(checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}
		summary, err := checkout.SelectShipping(c.Request.Context(), sessionID(c), req.MethodID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func validateCoupon(checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := checkout.ApplyCoupon(c.Request.Context(), sessionID(c), c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func removeCoupon(checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := checkout.RemoveCoupon(c.Request.Context(), sessionID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func confirmCheckout(checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}

		in := checkoutsvc.ConfirmInput{
			Customer: checkoutsvc.CustomerDetails{
				Name:                  req.Customer.Name,
				Email:                 req.Customer.Email,
				Phone:                 req.Customer.Phone,
				NIF:                   req.Customer.NIF,
				Address:               req.Customer.Address,
				City:                  req.Customer.City,
				ZipCode:               req.Customer.ZipCode,
				BillingSameAsShipping: req.Customer.BillingSameAsShipping,
				BillingAddress:        req.Customer.BillingAddress,
				BillingCity:           req.Customer.BillingCity,
				BillingZipCode:        req.Customer.BillingZipCode,
				SaveToProfile:         req.Customer.SaveToProfile,
			},
			PaymentMethod: req.Payment.PaymentMethod,
		}
		if req.Gift != nil {
			in.Gift = &checkoutsvc.GiftDetails{
				Message:  req.Gift.Message,
				FromName: req.Gift.FromName,
				ToName:   req.Gift.ToName,
			}
		}

		order, err := checkout.Confirm(c.Request.Context(), sessionID(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
