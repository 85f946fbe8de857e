package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesQuantities(t *testing.T) {
	u := &User{}

	u.AddToCart("1", 2)
	u.AddToCart("1", 3)

	require.Len(t, u.Cart, 1)
	assert.Equal(t, "1", u.Cart[0].ProductID)
	assert.Equal(t, 5, u.Cart[0].Quantity)
}

func TestAddToCartClampsQuantityToOne(t *testing.T) {
	u := &User{}

	u.AddToCart("1", 0)
	u.AddToCart("2", -4)

	require.Len(t, u.Cart, 2)
	assert.Equal(t, 1, u.Cart[0].Quantity)
	assert.Equal(t, 1, u.Cart[1].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	u := &User{}
	u.AddToCart("1", 2)
	u.AddToCart("2", 1)

	u.RemoveFromCart("1")

	require.Len(t, u.Cart, 1)
	assert.Equal(t, "2", u.Cart[0].ProductID)

	// removing something absent changes nothing
	u.RemoveFromCart("does-not-exist")
	assert.Len(t, u.Cart, 1)
}

func TestUpdateCartQuantityOverwrites(t *testing.T) {
	u := &User{}
	u.AddToCart("1", 2)

	u.UpdateCartQuantity("1", 7)

	require.Len(t, u.Cart, 1)
	assert.Equal(t, 7, u.Cart[0].Quantity)
}

func TestUpdateCartQuantityZeroRemoves(t *testing.T) {
	u := &User{}
	u.AddToCart("1", 2)
	u.AddToCart("2", 1)

	u.UpdateCartQuantity("1", 0)

	require.Len(t, u.Cart, 1)
	assert.Equal(t, "2", u.Cart[0].ProductID)
}

func TestUpdateCartQuantityUnknownProductIsNoop(t *testing.T) {
	u := &User{}
	u.AddToCart("1", 2)

	u.UpdateCartQuantity("99", 5)

	require.Len(t, u.Cart, 1)
	assert.Equal(t, 2, u.Cart[0].Quantity)
}

func TestClearCart(t *testing.T) {
	u := &User{}
	u.AddToCart("1", 2)
	u.AddToCart("2", 3)

	u.ClearCart()

	assert.Empty(t, u.Cart)
	assert.Equal(t, 0, u.CartTotalItems())
}

func TestCartTotalItems(t *testing.T) {
	u := &User{}
	u.AddToCart("1", 2)
	u.AddToCart("2", 3)

	assert.Equal(t, 5, u.CartTotalItems())
}

func TestAddToWishlistIsIdempotent(t *testing.T) {
	u := &User{}

	u.AddToWishlist("1")
	u.AddToWishlist("1")
	u.AddToWishlist("2")

	assert.Equal(t, []string{"1", "2"}, u.Wishlist)
}

func TestRemoveFromWishlist(t *testing.T) {
	u := &User{Wishlist: []string{"1", "2", "3"}}

	u.RemoveFromWishlist("2")
	assert.Equal(t, []string{"1", "3"}, u.Wishlist)

	u.RemoveFromWishlist("absent")
	assert.Equal(t, []string{"1", "3"}, u.Wishlist)
}
