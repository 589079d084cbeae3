package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"produtos/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[int64]models.Product
	nextID   int64
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int64]models.Product),
	}
}

// FindAll returns all products ordered by sortSpec.
func (r *MemoryProductRepository) FindAll(_ context.Context, sortSpec SortSpec) ([]models.Product, error) {
	return r.filter(func(models.Product) bool { return true }, sortSpec), nil
}

// FindByNameContaining returns the products whose name contains name, ignoring case.
func (r *MemoryProductRepository) FindByNameContaining(_ context.Context, name string, sortSpec SortSpec) ([]models.Product, error) {
	needle := strings.ToLower(name)
	return r.filter(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}, sortSpec), nil
}

// FindByID returns a product by its ID, or nil if there is none.
func (r *MemoryProductRepository) FindByID(_ context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Save adds the product when it has no ID yet and replaces it otherwise.
// A non-zero ID that is no longer stored is inserted again under that ID,
// matching gorm's Save upsert: a delete racing an update loses to the update.
func (r *MemoryProductRepository) Save(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.products {
		if existing.Name == product.Name && id != product.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateName, product.Name)
		}
	}

	if product.ID == 0 {
		r.nextID++
		product.ID = r.nextID
	} else if product.ID > r.nextID {
		r.nextID = product.ID
	}
	r.products[product.ID] = *product
	return nil
}

// DeleteByID removes a product by its ID.
func (r *MemoryProductRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

// Ping always succeeds.
func (r *MemoryProductRepository) Ping(context.Context) error {
	return nil
}

func (r *MemoryProductRepository) filter(keep func(models.Product) bool, sortSpec SortSpec) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			productList = append(productList, p)
		}
	}

	less := memoryLess(sortSpec.Field)
	sort.Slice(productList, func(i, j int) bool {
		a, b := productList[i], productList[j]
		if less != nil {
			if less(a, b) {
				return sortSpec.Direction != Desc
			}
			if less(b, a) {
				return sortSpec.Direction == Desc
			}
		}
		return a.ID < b.ID
	})
	return productList
}

func memoryLess(field string) func(a, b models.Product) bool {
	switch field {
	case "id":
		return func(a, b models.Product) bool { return a.ID < b.ID }
	case "name":
		return func(a, b models.Product) bool { return a.Name < b.Name }
	case "price":
		return func(a, b models.Product) bool { return a.Price < b.Price }
	case "stockQuantity":
		return func(a, b models.Product) bool { return a.StockQuantity < b.StockQuantity }
	case "createdAt":
		return func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}
