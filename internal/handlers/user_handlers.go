package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CodeAdityaP/Pixel/internal/auth"
	"github.com/CodeAdityaP/Pixel/internal/models"
)

//
// --- Account Handlers ---
//

// RegisterInput is kept separate from models.User so a client can never
// smuggle in an id or a role.
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// Register is the handler for POST /api/users/register
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: password.Hash,
		Address:      input.Address,
		Phone:        input.Phone,
		Role:         "user",
		IsActive:     true,
		Cart:         []models.CartItem{},
		Wishlist:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.Users.Insert(c.Request.Context(), user); err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		writeError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    user,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/users/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Same message for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		writeError(c, err)
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// The stamp is best-effort; login still succeeds without it.
	if err := h.Users.TouchLastLogin(c.Request.Context(), user.ID); err != nil {
		log.Printf("failed to stamp last login for %s: %v", user.ID.Hex(), err)
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GetProfile is the handler for GET /api/users/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileInput struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Address string `json:"address" binding:"max=200"`
	Phone   string `json:"phone"`
}

// UpdateProfile is the handler for PUT /api/users/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.UpdateProfile(c.Request.Context(), userID, input.Name, input.Address, input.Phone); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user":    user,
	})
}
