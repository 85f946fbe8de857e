package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

//
// --- Cart Handlers (Optional Auth) ---
//
// Anonymous callers are a first-class case here, not an error: every
// mutating operation reports success without persisting anything, which
// tells the storefront to keep the cart in local storage instead.

const anonymousCartMessage = "Please login to sync cart with server"

// GetCart is the handler for GET /api/cart
func (h *Handlers) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"cart": []models.CartItem{}})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": user.Cart})
}

type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddToCart is the handler for POST /api/cart/add
// An entry already in the cart has its quantity incremented; otherwise a
// new entry is appended.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"message": anonymousCartMessage,
			"cart":    []models.CartItem{},
		})
		return
	}

	// The product must exist in the catalog; stock is deliberately not
	// checked here. That decision belongs to order creation.
	if _, err := h.Products.FindByID(c.Request.Context(), input.ProductID); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	user.AddToCart(input.ProductID, input.Quantity)
	if err := h.Users.SaveCart(c.Request.Context(), userID, user.Cart); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    user.Cart,
	})
}

// RemoveFromCart is the handler for DELETE /api/cart/remove/:productId
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": anonymousCartMessage})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	user.RemoveFromCart(c.Param("productId"))
	if err := h.Users.SaveCart(c.Request.Context(), userID, user.Cart); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"cart":    user.Cart,
	})
}

type UpdateCartInput struct {
	// gte=0 allows zero, which removes the entry.
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// UpdateCartItem is the handler for PUT /api/cart/update/:productId
// A quantity of zero removes the entry.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": anonymousCartMessage})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	user.UpdateCartQuantity(c.Param("productId"), *input.Quantity)
	if err := h.Users.SaveCart(c.Request.Context(), userID, user.Cart); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"cart":    user.Cart,
	})
}

// ClearCart is the handler for DELETE /api/cart/clear
func (h *Handlers) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": anonymousCartMessage})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	user.ClearCart()
	if err := h.Users.SaveCart(c.Request.Context(), userID, user.Cart); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"cart":    []models.CartItem{},
	})
}
