package services

import (
	"context"
	"fmt"
	"time"

	"produtos/internal/dto"
	"produtos/internal/models"
	"produtos/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	now  func() time.Time
}

// Option configures a ProductService.
type Option func(*ProductService)

// WithClock replaces the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *ProductService) {
		s.now = now
	}
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, opts ...Option) *ProductService {
	s := &ProductService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll retrieves all products.
func (s *ProductService) ListAll(ctx context.Context, sort repositories.SortSpec) ([]models.Product, error) {
	return s.repo.FindAll(ctx, sort)
}

// ListByName retrieves the products whose name contains name.
func (s *ProductService) ListByName(ctx context.Context, name string, sort repositories.SortSpec) ([]models.Product, error) {
	return s.repo.FindByNameContaining(ctx, name, sort)
}

// FindByID retrieves a single product. It returns nil, nil when the product
// does not exist; callers decide how to report that.
func (s *ProductService) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new product and returns its client representation.
// A name already in use yields an error wrapping repositories.ErrDuplicateName.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (dto.ProductResponse, error) {
	product.ID = 0
	product.CreatedAt = s.now()
	if err := s.repo.Save(ctx, product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}
	return dto.ToResponse(*product), nil
}

// Delete removes a product by its ID.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// Update overwrites name, price, description and stock quantity of an
// existing product. ID and CreatedAt are kept.
func (s *ProductService) Update(ctx context.Context, id int64, patch models.Product) (*models.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{ID: id}
	}

	existing.Name = patch.Name
	existing.Price = patch.Price
	existing.Description = patch.Description
	existing.StockQuantity = patch.StockQuantity

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return existing, nil
}
