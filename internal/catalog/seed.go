package catalog

import (
	"context"
	"log"
	"time"

	"github.com/gosimple/slug"

	"github.com/CodeAdityaP/Pixel/internal/models"
	"github.com/CodeAdityaP/Pixel/internal/store"
)

// Products returns the fixed storefront catalog. The ids and price
// strings are load-bearing: the single-page UI ships the same list and
// keys its local cart/wishlist state on these ids.
func Products() []models.Product {
	now := time.Now()
	seed := []models.Product{
		{
			ID:            "1",
			Name:          "Gaming Mouse Pro",
			Price:         "$29.99",
			Image:         "/assets/pi1.jpg",
			Tags:          "New",
			Description:   "High-precision gaming mouse with RGB lighting",
			Category:      "gaming",
			InStock:       true,
			StockQuantity: 50,
		},
		{
			ID:            "2",
			Name:          "Mechanical Keyboard",
			Price:         "$89.99",
			Image:         "/assets/pi2.jpg",
			Tags:          "Sale",
			Description:   "RGB mechanical keyboard with tactile switches",
			Category:      "gaming",
			InStock:       true,
			StockQuantity: 30,
		},
		{
			ID:            "3",
			Name:          "Gaming Headset",
			Price:         "$149.99",
			Image:         "/assets/pi3.webp",
			Tags:          "New",
			Description:   "7.1 surround sound gaming headset",
			Category:      "gaming",
			InStock:       true,
			StockQuantity: 25,
		},
		{
			ID:            "4",
			Name:          "Gaming Monitor",
			Price:         "$299.99",
			Image:         "/assets/pi4.jpeg",
			Tags:          "New",
			Description:   "144Hz 4K gaming monitor",
			Category:      "gaming",
			InStock:       true,
			StockQuantity: 15,
		},
		{
			ID:            "5",
			Name:          "Gaming Chair",
			Price:         "$199.99",
			Image:         "/assets/pi5.jpg",
			Tags:          "Sale",
			Description:   "Ergonomic gaming chair with lumbar support",
			Category:      "gaming",
			InStock:       true,
			StockQuantity: 20,
		},
	}

	for i := range seed {
		seed[i].Slug = slug.Make(seed[i].Name)
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
	}
	return seed
}

// EnsureSeeded loads the catalog into an empty product collection.
// A non-empty collection is left untouched so stock adjustments survive
// restarts.
func EnsureSeeded(ctx context.Context, products *store.ProductStore) error {
	count, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, product := range Products() {
		if err := products.Insert(ctx, &product); err != nil {
			return err
		}
	}
	log.Printf("Seeded catalog with %d products", len(Products()))
	return nil
}
