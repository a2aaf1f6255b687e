package httpserver

import (
	"errors"
	"net/http"

	"velaluz/internal/domain"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses. Checkout-specific
// sentinels carry messages the storefront shows verbatim.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrCouponInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Código inválido ou expirado."})
	case errors.Is(err, domain.ErrCouponMinOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "O valor mínimo de compra para este cupão não foi atingido."})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "O carrinho está vazio."})
	case errors.Is(err, domain.ErrNoShippingMethod):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Por favor selecione um método de envio."})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
