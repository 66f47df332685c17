// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/book"
	"github.com/your-org/cafe-gateway/internal/domain/cart"
	"github.com/your-org/cafe-gateway/internal/domain/checkout"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
	"github.com/your-org/cafe-gateway/internal/domain/order"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
	"github.com/your-org/cafe-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/cafe-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/cafe-gateway/internal/pkg/pdf"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, redisClient *redis.Client, api *upstream.Client, lookup *menu.Lookup, cfg *config.Config, logger *logrus.Logger) {
	// Services
	menuService := menu.NewService(api, lookup, logger)
	bookService := book.NewService(api, logger)
	cartStore := cart.NewRedisStore(redisClient, cfg.Session.TTL)
	cartService := cart.NewService(cartStore, lookup, logger)
	orderService := order.NewService(api, logger)
	checkoutService := checkout.NewService(api, cartService, lookup, logger)
	pdfService := pdf.NewService(cfg)

	// Handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	bookHandler := handlers.NewBookHandler(bookService)
	cartHandler := handlers.NewCartHandler(cartService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, pdfService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Catalog routes
	menus := rg.Group("/menus")
	{
		menus.GET("", menuHandler.GetMenus)
		menus.GET("/:id", menuHandler.GetMenu)
		menus.POST("", menuHandler.CreateMenu)
	}

	books := rg.Group("/books")
	{
		books.GET("", bookHandler.GetBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.POST("", bookHandler.CreateBook)
	}

	// Cart routes are scoped to the session from the cart cookie
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.CartSession(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.PUT("/items/:id/option", cartHandler.StageOption)
		cartGroup.POST("/items/:id/option", cartHandler.CommitOption)
	}

	// Order routes; submission needs the cart session
	orders := rg.Group("/orders")
	orders.Use(middleware.CartSession(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", checkoutHandler.Submit)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
	}
}
