// Package memory is an in-memory product repository, seeded at startup.
package memory

import (
	"context"
	"sync"

	"github.com/rocketshoes/cart-service/internal/catalog/app"
	"github.com/rocketshoes/cart-service/internal/catalog/domain"
)

// Item is one seed entry: a product together with its available stock.
type Item struct {
	Product domain.Product `json:"product"`
	Stock   int64          `json:"stock"`
}

type Repo struct {
	mu       sync.RWMutex
	order    []int64
	products map[int64]domain.Product
	stock    map[int64]int64
}

func NewRepo(items []Item) *Repo {
	r := &Repo{
		products: make(map[int64]domain.Product, len(items)),
		stock:    make(map[int64]int64, len(items)),
	}
	for _, it := range items {
		if _, dup := r.products[it.Product.ID]; !dup {
			r.order = append(r.order, it.Product.ID)
		}
		r.products[it.Product.ID] = it.Product
		r.stock[it.Product.ID] = it.Stock
	}
	return r
}

func (r *Repo) Get(ctx context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *Repo) Stock(ctx context.Context, id int64) (domain.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	amount, ok := r.stock[id]
	if !ok {
		return domain.Stock{}, app.ErrNotFound
	}
	return domain.Stock{ID: id, Amount: amount}, nil
}
