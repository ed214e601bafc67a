package app

import (
	"context"
	"errors"

	"github.com/rocketshoes/cart-service/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetStock(ctx context.Context, id int64) (domain.Stock, error) {
	if id <= 0 {
		return domain.Stock{}, ErrInvalidInput
	}
	return s.repo.Stock(ctx, id)
}
