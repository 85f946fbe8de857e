package models

import (
	"fmt"
	"time"
)

// Product is the catalog document stored in the 'products' collection.
// The ID is the external catalog identifier (the storefront ships with
// ids "1".."5"); admin-created products get a generated one.
// Price is kept as the formatted display string (e.g. "$29.99") exactly
// as the catalog seed carries it; use the pricing package to do math on it.
type Product struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Slug        string `json:"slug" bson:"slug"`
	Price       string `json:"price" bson:"price"`
	Image       string `json:"image" bson:"image"`
	Tags        string `json:"tags" bson:"tags"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"`

	// --- Stock ---
	// Invariant: InStock is true iff StockQuantity > 0.
	InStock       bool `json:"inStock" bson:"inStock"`
	StockQuantity int  `json:"stockQuantity" bson:"stockQuantity"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Available reports whether the product can currently be purchased.
func (p *Product) Available() bool {
	return p.InStock && p.StockQuantity > 0
}

// ReduceStock removes quantity units from stock.
// It fails without changing anything when the stock on hand is lower than
// the requested quantity, and flips the availability flag off when the
// stock reaches exactly zero.
func (p *Product) ReduceStock(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: reduce quantity must be at least 1", ErrValidation)
	}
	if p.StockQuantity < quantity {
		return fmt.Errorf("%w: have %d, requested %d", ErrInsufficientStock, p.StockQuantity, quantity)
	}
	p.StockQuantity -= quantity
	if p.StockQuantity == 0 {
		p.InStock = false
	}
	return nil
}

// AddStock returns quantity units to stock and flips the availability
// flag back on whenever the resulting stock is positive.
func (p *Product) AddStock(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: add quantity must be at least 1", ErrValidation)
	}
	p.StockQuantity += quantity
	if p.StockQuantity > 0 {
		p.InStock = true
	}
	return nil
}
