package router

import (
	"net/http"

	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/http/handlers/admin"
	"github.com/banarasikart/bsk-api/internal/http/handlers/public"
	"github.com/banarasikart/bsk-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Options carries everything the router needs.
type Options struct {
	Config        *config.Config
	Public        *public.Handler
	Admin         *admin.Handler
	UploadBaseDir string
}

// New builds the gin engine with the full route table.
func New(opts Options) *gin.Engine {
	cfg := opts.Config
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS(&cfg.CORS))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	uploadDir := opts.UploadBaseDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	engine.Static("/uploads", uploadDir)

	engine.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	api := engine.Group("/api")
	{
		api.GET("/categories", opts.Public.ListCategories)
		api.POST("/categories", opts.Admin.CreateCategory)
		api.PUT("/categories/:id", opts.Admin.UpdateCategory)
		api.DELETE("/categories/:id", opts.Admin.DeleteCategory)

		api.GET("/products", opts.Public.ListProducts)
		api.GET("/products/:id", opts.Public.GetProduct)
		api.POST("/products", opts.Admin.CreateProduct)
		api.PUT("/products/:id", opts.Admin.UpdateProduct)
		api.DELETE("/products/:id", opts.Admin.DeleteProduct)

		api.GET("/cart", opts.Public.GetCart)
		api.POST("/cart", opts.Public.AddToCart)
		api.PUT("/cart/:id", opts.Public.UpdateCartItem)
		api.DELETE("/cart/:id", opts.Public.RemoveCartItem)
		api.DELETE("/cart", opts.Public.ClearCart)

		api.GET("/orders", opts.Admin.ListOrders)
		api.GET("/orders/:id", opts.Public.GetOrder)
		api.POST("/orders", CheckoutRateLimit(&cfg.Security.CheckoutRateLimit), opts.Public.CreateOrder)
		api.PATCH("/orders/:id/status", opts.Admin.UpdateOrderStatus)

		api.GET("/stats", opts.Admin.GetStats)
	}

	return engine
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
