// internal/interfaces/http/handlers/delivery.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jewelbellery/storefront-backend/internal/config"
	"github.com/jewelbellery/storefront-backend/internal/domain/session"
)

// DeliveryHandler handles delivery pincode endpoints
type DeliveryHandler struct {
	sessions *session.Manager
	config   *config.Config
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(sessions *session.Manager, cfg *config.Config) *DeliveryHandler {
	return &DeliveryHandler{
		sessions: sessions,
		config:   cfg,
	}
}

// UpdatePincodeRequest represents the pincode update request. Any string is
// accepted; the stored value is the sanitized form.
type UpdatePincodeRequest struct {
	Pincode string `json:"pincode"`
}

// GetPincode handles GET /delivery-pincode
func (h *DeliveryHandler) GetPincode(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	sess := h.sessions.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery pincode retrieved successfully",
		"data": gin.H{
			"pincode": sess.DeliveryPincode(),
		},
	})
}

// UpdatePincode handles PUT /delivery-pincode
func (h *DeliveryHandler) UpdatePincode(c *gin.Context) {
	var req UpdatePincodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := getOrCreateSessionID(c, h.config)
	sess := h.sessions.Get(c.Request.Context(), sessionID)
	stored := sess.SetDeliveryPincode(c.Request.Context(), req.Pincode)

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery pincode updated successfully",
		"data": gin.H{
			"pincode": stored,
		},
	})
}
