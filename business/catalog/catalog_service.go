package catalog

import (
	"context"
	"fmt"

	"insureAdvisor/domain"
)

// Service serves the normalized customer and product tables loaded at
// startup. Both tables are immutable once normalization completes, so
// concurrent requests share them without locks.
type Service struct {
	customers []domain.Customer
	products  []domain.Product
}

func NewService(customers []domain.Customer, products []domain.Product) *Service {
	return &Service{
		customers: customers,
		products:  products,
	}
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.products, nil
}

func (s *Service) ProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}
	for _, p := range s.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NotFoundError{Entity: "product", ID: id}
}

func (s *Service) Customers(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.customers, nil
}

func (s *Service) CustomerByID(ctx context.Context, id uint) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}
	for _, c := range s.customers {
		if c.CustomerID == id {
			return c, nil
		}
	}
	return domain.Customer{}, domain.NotFoundError{Entity: "customer", ID: uint64(id)}
}
