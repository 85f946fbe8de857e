package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CodeAdityaP/Pixel/internal/events"
	"github.com/CodeAdityaP/Pixel/internal/models"
	"github.com/CodeAdityaP/Pixel/internal/store"
)

// Stock policies for order creation. The storefront historically never
// touched stock at checkout (best-effort); checked mode closes that gap
// by decrementing stock per line item and rejecting on shortfall.
const (
	StockPolicyBestEffort = "best-effort"
	StockPolicyChecked    = "checked"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Users    *store.UserStore
	Products *store.ProductStore
	Orders   *store.OrderStore
	Events   *events.Publisher // nil when event publishing is disabled
	// StockPolicy is StockPolicyBestEffort or StockPolicyChecked.
	StockPolicy string
}

// currentUserID returns the authenticated user's ObjectID from the gin
// context. The bool is false for anonymous callers (empty "userID").
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDHex := c.GetString("userID")
	if userIDHex == "" {
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return userID, true
}

// writeError maps the sentinel error taxonomy onto HTTP status codes and
// sends the standard {"error": ...} body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrInvalidState):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredential):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrPersistence):
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
