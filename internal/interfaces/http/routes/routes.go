// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jewelbellery/storefront-backend/internal/config"
	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
	"github.com/jewelbellery/storefront-backend/internal/domain/session"
	"github.com/jewelbellery/storefront-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes onto the router group
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Store, sessions *session.Manager, cfg *config.Config) {
	setupProductRoutes(rg, cat)
	setupCartRoutes(rg, cat, sessions, cfg)
	setupDeliveryRoutes(rg, sessions, cfg)
}

// setupProductRoutes sets up product catalog routes
func setupProductRoutes(rg *gin.RouterGroup, cat *catalog.Store) {
	catalogHandler := handlers.NewCatalogHandler(cat)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// setupCartRoutes sets up cart routes. All cart routes work with the
// cookie-identified guest session.
func setupCartRoutes(rg *gin.RouterGroup, cat *catalog.Store, sessions *session.Manager, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cat, sessions, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// setupDeliveryRoutes sets up delivery pincode routes
func setupDeliveryRoutes(rg *gin.RouterGroup, sessions *session.Manager, cfg *config.Config) {
	deliveryHandler := handlers.NewDeliveryHandler(sessions, cfg)

	rg.GET("/delivery-pincode", deliveryHandler.GetPincode)
	rg.PUT("/delivery-pincode", deliveryHandler.UpdatePincode)
}
