package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/rocketshoes/cart-service/internal/cart/domain"
	"github.com/rocketshoes/cart-service/internal/obs"
)

// CartKey is the well-known store key holding the whole cart payload.
const CartKey = "rocketshoes:cart"

const (
	msgOutOfStock   = "requested quantity is out of stock"
	msgAddFailed    = "failed to add product"
	msgRemoveFailed = "failed to remove product"
	msgUpdateFailed = "failed to update product quantity"
)

// Service owns the cart. Mutating operations are serialized by an internal
// mutex so each read-check-mutate-persist sequence is atomic: either it
// completes and persists, or the cart stays exactly as it was.
//
// Every failure is reported through the notifier at most once and also
// returned as a typed error, so callers can branch on the outcome without
// depending on the notification sink.
type Service struct {
	products ProductLookup
	stock    StockLookup
	store    Store
	notifier Notifier
	log      *slog.Logger

	mu   sync.Mutex
	cart domain.Cart
}

// NewService loads the persisted cart and returns a ready service.
// An absent or unparsable payload yields an empty cart; a store read
// failure is returned to the caller.
func NewService(products ProductLookup, stock StockLookup, store Store, notifier Notifier, log *slog.Logger) (*Service, error) {
	s := &Service{
		products: products,
		stock:    stock,
		store:    store,
		notifier: notifier,
		log:      log,
	}

	raw, found, err := store.Get(context.Background(), CartKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if found {
		var cart domain.Cart
		if err := json.Unmarshal(raw, &cart); err != nil {
			log.Warn("stored cart is unparsable, starting empty", slog.Any("err", err))
		} else {
			s.cart = cart
		}
	}

	return s, nil
}

// Items returns a snapshot of the current cart.
func (s *Service) Items() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// AddProduct puts one more unit of the product into the cart: an existing
// item is incremented, a new product is fetched from the catalog and
// appended with amount 1. The available stock is checked first; the cart is
// only persisted, and only mutated, when the whole sequence succeeds.
func (s *Service) AddProduct(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.cart.Find(productID)
	var currentAmount int64
	if exists {
		currentAmount = s.cart[idx].Amount
	}

	available, err := s.stock.Stock(ctx, productID)
	if err != nil {
		return s.fail("add", msgAddFailed, fmt.Errorf("stock lookup for product %d: %w", productID, err))
	}
	if available < currentAmount+1 {
		return s.reject("add", msgOutOfStock, productID, domain.ErrInsufficientStock)
	}

	next := s.cart.Clone()
	if exists {
		next[idx].Amount++
	} else {
		product, err := s.products.Product(ctx, productID)
		if err != nil {
			return s.fail("add", msgAddFailed, fmt.Errorf("product lookup for %d: %w", productID, err))
		}
		next = append(next, domain.CartItem{Product: product, Amount: 1})
	}

	if err := s.persist(ctx, next); err != nil {
		return s.fail("add", msgAddFailed, err)
	}

	s.cart = next
	obs.CartOperations.WithLabelValues("add", "ok").Inc()
	return nil
}

// RemoveProduct deletes the item with the given product ID, preserving the
// order of the remaining items. Removing an absent product is an error.
func (s *Service) RemoveProduct(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.cart.Find(productID)
	if !exists {
		return s.reject("remove", msgRemoveFailed, productID, domain.ErrItemNotFound)
	}

	next := slices.Delete(s.cart.Clone(), idx, idx+1)

	if err := s.persist(ctx, next); err != nil {
		return s.fail("remove", msgRemoveFailed, err)
	}

	s.cart = next
	obs.CartOperations.WithLabelValues("remove", "ok").Inc()
	return nil
}

// UpdateProductAmount sets the item's quantity to the given value after
// re-checking stock. A non-positive amount is silently ignored; the guard
// is deliberate and emits no notification.
func (s *Service) UpdateProductAmount(ctx context.Context, productID, amount int64) error {
	if amount <= 0 {
		obs.CartOperations.WithLabelValues("update", "noop").Inc()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.cart.Find(productID)
	if !exists {
		return s.reject("update", msgUpdateFailed, productID, domain.ErrItemNotFound)
	}

	available, err := s.stock.Stock(ctx, productID)
	if err != nil {
		return s.fail("update", msgUpdateFailed, fmt.Errorf("stock lookup for product %d: %w", productID, err))
	}
	if available < amount {
		return s.reject("update", msgOutOfStock, productID, domain.ErrInsufficientStock)
	}

	next := s.cart.Clone()
	next[idx].Amount = amount

	if err := s.persist(ctx, next); err != nil {
		return s.fail("update", msgUpdateFailed, err)
	}

	s.cart = next
	obs.CartOperations.WithLabelValues("update", "ok").Inc()
	return nil
}

// persist writes the full candidate cart to the durable store. The caller
// commits the in-memory cart only after persist succeeds, so a failed write
// leaves no partial state.
func (s *Service) persist(ctx context.Context, cart domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Set(ctx, CartKey, payload); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func (s *Service) fail(op, notification string, err error) error {
	s.log.Error("cart operation failed", slog.String("op", op), slog.Any("err", err))
	s.notifier.Error(notification)
	obs.CartOperations.WithLabelValues(op, "error").Inc()
	return err
}

func (s *Service) reject(op, notification string, productID int64, err error) error {
	s.log.Info("cart operation rejected",
		slog.String("op", op),
		slog.Int64("product_id", productID),
		slog.Any("reason", err),
	)
	s.notifier.Error(notification)
	obs.CartOperations.WithLabelValues(op, outcomeLabel(err)).Inc()
	return err
}

func outcomeLabel(err error) string {
	switch err {
	case domain.ErrInsufficientStock:
		return "insufficient_stock"
	case domain.ErrItemNotFound:
		return "not_found"
	default:
		return "error"
	}
}
