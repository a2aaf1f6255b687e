package httpserver

import (
	"log"
	"net/http"

	cartsvc "velaluz/internal/service/cart"
	checkoutsvc "velaluz/internal/service/checkout"
	customersvc "velaluz/internal/service/customer"
	ordersvc "velaluz/internal/service/order"
	productsvc "velaluz/internal/service/product"
	promotionsvc "velaluz/internal/service/promotion"
	shippingsvc "velaluz/internal/service/shipping"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Deps carries the wired services into the router.
type Deps struct {
	ProductSvc   *productsvc.Service
	CartSvc      *cartsvc.Service
	ShippingSvc  *shippingsvc.Service
	PromotionSvc *promotionsvc.Service
	CheckoutSvc  *checkoutsvc.Service
	OrderSvc     *ordersvc.Service
	CustomerSvc  *customersvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, rdb *redis.Client, deps Deps, corsOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{corsOrigin}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, sessionHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, sessionHeader)
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, rdb))

	shop := router.Group("/shop", sessionMiddleware())
	{
		shop.GET("/products", listShopProducts(deps.ProductSvc))
		shop.GET("/products/:id", getShopProduct(deps.ProductSvc))

		shop.GET("/cart", getCart(deps.CheckoutSvc))
		shop.POST("/cart/items", addCartItem(deps.CartSvc, deps.CheckoutSvc, deps.ProductSvc))
		shop.PATCH("/cart/items/:productId", updateCartItem(deps.CartSvc, deps.CheckoutSvc))
		shop.DELETE("/cart/items/:productId", removeCartItem(deps.CartSvc, deps.CheckoutSvc))
		shop.DELETE("/cart", clearCart(deps.CartSvc))

		shop.GET("/shipping", listActiveShipping(deps.ShippingSvc))
		shop.POST("/shipping/select", selectShipping(deps.CheckoutSvc))

		shop.GET("/promotions/validate/:code", validateCoupon(deps.CheckoutSvc))
		shop.DELETE("/promotions/applied", removeCoupon(deps.CheckoutSvc))

		shop.POST("/orders", confirmCheckout(deps.CheckoutSvc))
		shop.GET("/orders", listShopOrders(deps.OrderSvc))
		shop.GET("/orders/:id", getShopOrder(deps.OrderSvc))

		shop.PUT("/profile", updateProfile(deps.CustomerSvc))
	}

	admin := router.Group("/admin")
	{
		admin.GET("/products", listAdminProducts(deps.ProductSvc))
		admin.GET("/products/:id", getAdminProduct(deps.ProductSvc))
		admin.POST("/products", createProduct(deps.ProductSvc))
		admin.PUT("/products/:id", updateProduct(deps.ProductSvc))
		admin.DELETE("/products/:id", deleteProduct(deps.ProductSvc))

		admin.GET("/promotions", listPromotions(deps.PromotionSvc))
		admin.GET("/promotions/:id", getPromotion(deps.PromotionSvc))
		admin.POST("/promotions", createPromotion(deps.PromotionSvc))
		admin.PUT("/promotions/:id", updatePromotion(deps.PromotionSvc))
		admin.PATCH("/promotions/:id/status", togglePromotion(deps.PromotionSvc))
		admin.DELETE("/promotions/:id", deletePromotion(deps.PromotionSvc))

		admin.GET("/shipping", listAdminShipping(deps.ShippingSvc))
		admin.POST("/shipping", createShipping(deps.ShippingSvc))
		admin.PUT("/shipping/:id", updateShipping(deps.ShippingSvc))
		admin.DELETE("/shipping/:id", deleteShipping(deps.ShippingSvc))

		admin.GET("/orders", listAdminOrders(deps.OrderSvc))
		admin.POST("/orders", createAdminOrder(deps.OrderSvc))
		admin.PATCH("/orders/:id/status", updateOrderStatus(deps.OrderSvc))
		admin.PATCH("/orders/:id/invoice-status", toggleInvoiceStatus(deps.OrderSvc))
	}

	return router
}
