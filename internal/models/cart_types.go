package models

// CartItem is one embedded cart entry on a User document.
type CartItem struct {
	ProductID string `json:"productId" bson:"product"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// AddToCart merges quantity units of a product into the cart: an existing
// entry has its quantity incremented, otherwise a new entry is appended.
// Quantities below 1 are treated as 1.
func (u *User) AddToCart(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range u.Cart {
		if u.Cart[i].ProductID == productID {
			u.Cart[i].Quantity += quantity
			return
		}
	}
	u.Cart = append(u.Cart, CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveFromCart drops the matching entry. Absent entries are a no-op.
func (u *User) RemoveFromCart(productID string) {
	kept := u.Cart[:0]
	for _, item := range u.Cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	u.Cart = kept
}

// UpdateCartQuantity overwrites the quantity of an existing entry.
// A quantity of zero or less removes the entry instead.
func (u *User) UpdateCartQuantity(productID string, quantity int) {
	if quantity <= 0 {
		u.RemoveFromCart(productID)
		return
	}
	for i := range u.Cart {
		if u.Cart[i].ProductID == productID {
			u.Cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (u *User) ClearCart() {
	u.Cart = []CartItem{}
}

// CartTotalItems sums the quantities across all cart entries.
func (u *User) CartTotalItems() int {
	total := 0
	for _, item := range u.Cart {
		total += item.Quantity
	}
	return total
}

// AddToWishlist appends the product id unless it is already present.
func (u *User) AddToWishlist(productID string) {
	for _, id := range u.Wishlist {
		if id == productID {
			return
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
}

// RemoveFromWishlist drops the matching id. Absent ids are a no-op.
func (u *User) RemoveFromWishlist(productID string) {
	kept := u.Wishlist[:0]
	for _, id := range u.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	u.Wishlist = kept
}
