package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/sweetshop/internal/adapters/config"
	"github.com/dmaia/sweetshop/internal/adapters/http/controllers"
	"github.com/dmaia/sweetshop/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	buyController     *controllers.BuyController
	rateLimiter       middleware.RateLimiter
	imagesConfig      config.ImagesConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	buyController *controllers.BuyController,
	rateLimiter middleware.RateLimiter,
	imagesConfig config.ImagesConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		buyController:     buyController,
		rateLimiter:       rateLimiter,
		imagesConfig:      imagesConfig,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter
	writer := middleware.RequireRoles("admin", "confectioner")

	router.Static(r.imagesConfig.PublicPath, r.imagesConfig.Dir)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest(), middleware.ExtractIdentity())
		v1Group.GET("/health", r.healthController.Health)

		products := v1Group.Group("/products")
		{
			products.GET("", r.productController.List)
			products.GET("/top-5-cheap", r.productController.TopCheap)
			products.GET("/product-stats", r.productController.Stats)
			products.GET("/products-within/:distance/center/:latlng/unit/:unit", r.productController.Within)
			products.GET("/distances/:latlng/unit/:unit", r.productController.Distances)
			products.GET("/:id", r.productController.Get)

			products.POST("", writer, middleware.RateLimit(rl, 15, 1*time.Minute), r.productController.Create)
			products.PATCH("/:id", writer, middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.Update)
			products.DELETE("/:id", writer, middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.Delete)
		}

		v1Group.GET("/buy/checkout-session/:productId", middleware.RequireRoles(), r.buyController.CheckoutSession)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
