package httpserver

import (
	"net/http"

	"velaluz/internal/domain"
	promotionsvc "velaluz/internal/service/promotion"

	"github.com/gin-gonic/gin"
)

type promotionStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func listPromotions(svc *promotionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		promos, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, promos)
	}
}

func getPromotion(svc *promotionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		promo, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, promo)
	}
}

func createPromotion(svc *promotionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Promotion
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

func updatePromotion(svc *promotionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Promotion
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

func togglePromotion(svc *promotionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req promotionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, err)
			return
		}
		if err := svc.SetActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deletePromotion(svc *promotionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
