// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jewelbellery/storefront-backend/internal/config"
	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
	"github.com/jewelbellery/storefront-backend/internal/domain/session"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	catalog  *catalog.Store
	sessions *session.Manager
	config   *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cat *catalog.Store, sessions *session.Manager, cfg *config.Config) *CartHandler {
	return &CartHandler{
		catalog:  cat,
		sessions: sessions,
		config:   cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := h.session(c)
	items, totals := sess.Cart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":  items,
			"totals": totals,
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	sess := h.session(c)
	sess.AddItem(c.Request.Context(), product)
	items, totals := sess.Cart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"items":  items,
			"totals": totals,
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:id. Removing a product that is
// not in the cart is a no-op, not an error.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	sess := h.session(c)
	sess.RemoveItem(c.Request.Context(), productID)
	items, totals := sess.Cart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data": gin.H{
			"items":  items,
			"totals": totals,
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess := h.session(c)
	sess.ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count, used for the cart badge
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sess := h.session(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": sess.CartItemCount(),
		},
	})
}

func (h *CartHandler) session(c *gin.Context) *session.Session {
	sessionID := getOrCreateSessionID(c, h.config)
	return h.sessions.Get(c.Request.Context(), sessionID)
}

// getOrCreateSessionID gets the session ID from the cookie or creates a new one
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	sessionID, err := c.Cookie(cfg.Session.CookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		maxAge := int(cfg.Session.TTL.Seconds())
		c.SetCookie(cfg.Session.CookieName, sessionID, maxAge, "/", "", false, true)
	}

	return sessionID
}
