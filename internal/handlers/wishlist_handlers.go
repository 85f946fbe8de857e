package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Wishlist Handlers (Optional Auth) ---
//
// Same dual-mode contract as the cart: anonymous mutations succeed
// without persisting, signalling local-only fallback.

const anonymousWishlistMessage = "Please login to sync wishlist with server"

// GetWishlist is the handler for GET /api/wishlist
func (h *Handlers) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"wishlist": []string{}})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": user.Wishlist})
}

type AddToWishlistInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToWishlist is the handler for POST /api/wishlist/add
// Adding a product already on the wishlist is an idempotent no-op.
func (h *Handlers) AddToWishlist(c *gin.Context) {
	var input AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"message":  anonymousWishlistMessage,
			"wishlist": []string{},
		})
		return
	}

	if _, err := h.Products.FindByID(c.Request.Context(), input.ProductID); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	user.AddToWishlist(input.ProductID)
	if err := h.Users.SaveWishlist(c.Request.Context(), userID, user.Wishlist); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Item added to wishlist",
		"wishlist": user.Wishlist,
	})
}

// RemoveFromWishlist is the handler for DELETE /api/wishlist/remove/:productId
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": anonymousWishlistMessage})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	user.RemoveFromWishlist(c.Param("productId"))
	if err := h.Users.SaveWishlist(c.Request.Context(), userID, user.Wishlist); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Item removed from wishlist",
		"wishlist": user.Wishlist,
	})
}
