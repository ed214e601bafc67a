package app

import (
	"context"

	"github.com/rocketshoes/cart-service/internal/cart/domain"
)

// ProductLookup resolves full product data for a product ID.
type ProductLookup interface {
	Product(ctx context.Context, productID int64) (domain.Product, error)
}

// StockLookup reports the currently available quantity for a product.
// Stock is authoritative and re-checked on every mutation, never cached.
type StockLookup interface {
	Stock(ctx context.Context, productID int64) (int64, error)
}

// Store is the durable key-value medium holding the serialized cart.
// The cart owns its key exclusively; no other writer is assumed.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Notifier delivers fire-and-forget user-facing messages.
type Notifier interface {
	Error(text string)
}
