package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/CodeAdityaP/Pixel/internal/models"
	"github.com/CodeAdityaP/Pixel/internal/pricing"
)

//
// --- Catalog Handlers (Public) ---
//

// ListProducts is the handler for GET /api/products
// Optional query filters: ?category=gaming&tag=Sale
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context(), c.Query("category"), c.Query("tag"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /api/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// SearchProducts is the handler for GET /api/products/search?q=...
func (h *Handlers) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query 'q' is required"})
		return
	}

	products, err := h.Products.Search(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// --- Catalog Handlers (Admin-Only) ---
//

type CreateProductInput struct {
	Name          string `json:"name" binding:"required"`
	Price         string `json:"price" binding:"required"`
	Image         string `json:"image" binding:"required"`
	Tags          string `json:"tags"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	StockQuantity int    `json:"stockQuantity" binding:"gte=0"`
}

// CreateProduct is the handler for POST /api/admin/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Normalize the price through the decimal parser so a malformed
	// string never reaches the catalog.
	amount, err := pricing.Parse(input.Price)
	if err != nil {
		writeError(c, err)
		return
	}

	if input.Tags == "" {
		input.Tags = "New"
	}
	if input.Category == "" {
		input.Category = "gaming"
	}

	now := time.Now()
	product := &models.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Slug:          slug.Make(input.Name),
		Price:         pricing.Format(amount),
		Image:         input.Image,
		Tags:          input.Tags,
		Description:   input.Description,
		Category:      input.Category,
		InStock:       input.StockQuantity > 0,
		StockQuantity: input.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.Products.Insert(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created",
		"product": product,
	})
}

type UpdateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Tags        string `json:"tags"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateProduct is the handler for PUT /api/admin/products/:id
// Stock is adjusted through AdjustStock, not here.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := pricing.Parse(input.Price)
	if err != nil {
		writeError(c, err)
		return
	}

	product, err := h.Products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	product.Name = input.Name
	product.Slug = slug.Make(input.Name)
	product.Price = pricing.Format(amount)
	product.Image = input.Image
	if input.Tags != "" {
		product.Tags = input.Tags
	}
	product.Description = input.Description
	if input.Category != "" {
		product.Category = input.Category
	}

	if err := h.Products.Update(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated",
		"product": product,
	})
}

type AdjustStockInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
	// Op is "add" or "reduce".
	Op string `json:"op" binding:"required,oneof=add reduce"`
}

// AdjustStock is the handler for PATCH /api/admin/products/:id/stock
// Reducing below the stock on hand is rejected with 409 and leaves the
// product untouched.
func (h *Handlers) AdjustStock(c *gin.Context) {
	var input AdjustStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		product *models.Product
		err     error
	)
	if input.Op == "add" {
		product, err = h.Products.AddStock(c.Request.Context(), c.Param("id"), input.Quantity)
	} else {
		product, err = h.Products.ReduceStock(c.Request.Context(), c.Param("id"), input.Quantity)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated",
		"product": product,
	})
}
