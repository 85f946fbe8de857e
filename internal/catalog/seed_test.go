package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeAdityaP/Pixel/internal/pricing"
)

func TestSeedCatalogShape(t *testing.T) {
	products := Products()
	require.Len(t, products, 5)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Slug)
		assert.Equal(t, "gaming", p.Category)
		assert.True(t, p.Available(), "%s should start in stock", p.Name)

		// every seed price must parse and round-trip
		d, err := pricing.Parse(p.Price)
		require.NoError(t, err, "price %q", p.Price)
		assert.Equal(t, p.Price, pricing.Format(d))
	}
}

func TestSeedSlugsAreURLSafe(t *testing.T) {
	for _, p := range Products() {
		assert.Regexp(t, `^[a-z0-9-]+$`, p.Slug)
	}
}
