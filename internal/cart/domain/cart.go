package domain

// Product is catalog reference data carried into the cart. Field names match
// the catalog API payload so the persisted cart round-trips unchanged.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CartItem is a product plus the requested quantity. Identity is the
// product ID; a cart holds at most one item per product.
type CartItem struct {
	Product
	Amount int64 `json:"amount"`
}

// Subtotal is the line total for this item.
func (it CartItem) Subtotal() float64 {
	return it.Price * float64(it.Amount)
}

// Cart is an ordered sequence of items, insertion order preserved.
type Cart []CartItem

// Find returns the position of the item with the given product ID.
func (c Cart) Find(productID int64) (int, bool) {
	for i, it := range c {
		if it.ID == productID {
			return i, true
		}
	}
	return -1, false
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Total sums the line subtotals.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c {
		total += it.Subtotal()
	}
	return total
}
