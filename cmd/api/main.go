package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"velaluz/internal/config"
	"velaluz/internal/db"
	"velaluz/internal/httpserver"
	"velaluz/internal/repository/cartstore"
	customerrepo "velaluz/internal/repository/customer"
	orderrepo "velaluz/internal/repository/order"
	productrepo "velaluz/internal/repository/product"
	promotionrepo "velaluz/internal/repository/promotion"
	"velaluz/internal/repository/sessionstore"
	shippingrepo "velaluz/internal/repository/shipping"
	cartsvc "velaluz/internal/service/cart"
	checkoutsvc "velaluz/internal/service/checkout"
	customersvc "velaluz/internal/service/customer"
	ordersvc "velaluz/internal/service/order"
	productsvc "velaluz/internal/service/product"
	promotionsvc "velaluz/internal/service/promotion"
	shippingsvc "velaluz/internal/service/shipping"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer rdb.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)

	shippingRepo := shippingrepo.NewPostgres(dbpool, logger)
	shippingService := shippingsvc.New(shippingRepo, logger)

	promotionRepo := promotionrepo.NewPostgres(dbpool, logger)
	promotionService := promotionsvc.New(promotionRepo, logger)

	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, logger)

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	customerService := customersvc.New(customerRepo)

	cartStore := cartstore.NewRedis(rdb, logger)
	cartService := cartsvc.New(cartStore, logger)

	sessionStore := sessionstore.NewRedis(rdb, logger)
	checkoutService := checkoutsvc.New(sessionStore, cartService, shippingService, promotionService, orderRepo, customerRepo, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, rdb, httpserver.Deps{
		ProductSvc:   productService,
		CartSvc:      cartService,
		ShippingSvc:  shippingService,
		PromotionSvc: promotionService,
		CheckoutSvc:  checkoutService,
		OrderSvc:     orderService,
		CustomerSvc:  customerService,
	}, cfg.CORSOrigin)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
