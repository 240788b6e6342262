// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Store
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Store) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
	}
}

// GetProducts handles GET /products. An optional ?search= query filters the
// catalog by case-insensitive name substring.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	query := c.Query("search")
	products := h.catalog.Filter(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.catalog.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
