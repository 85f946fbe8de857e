package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceStock(t *testing.T) {
	p := &Product{StockQuantity: 10, InStock: true}

	require.NoError(t, p.ReduceStock(4))
	assert.Equal(t, 6, p.StockQuantity)
	assert.True(t, p.InStock)
}

func TestReduceStockFailureLeavesProductUnchanged(t *testing.T) {
	p := &Product{StockQuantity: 3, InStock: true}

	err := p.ReduceStock(5)

	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, p.StockQuantity)
	assert.True(t, p.InStock)
}

func TestReduceStockToZeroFlipsFlag(t *testing.T) {
	p := &Product{StockQuantity: 2, InStock: true}

	require.NoError(t, p.ReduceStock(2))

	assert.Equal(t, 0, p.StockQuantity)
	assert.False(t, p.InStock)
	assert.False(t, p.Available())
}

func TestAddStockFlipsFlagBackOn(t *testing.T) {
	p := &Product{StockQuantity: 0, InStock: false}

	require.NoError(t, p.AddStock(5))

	assert.Equal(t, 5, p.StockQuantity)
	assert.True(t, p.InStock)
	assert.True(t, p.Available())
}

func TestStockOperationsRejectNonPositiveQuantities(t *testing.T) {
	p := &Product{StockQuantity: 5, InStock: true}

	assert.ErrorIs(t, p.ReduceStock(0), ErrValidation)
	assert.ErrorIs(t, p.ReduceStock(-1), ErrValidation)
	assert.ErrorIs(t, p.AddStock(0), ErrValidation)
	assert.Equal(t, 5, p.StockQuantity)
}
