package repositories

import (
	"context"
	"errors"

	"produtos/internal/models"
)

// ErrDuplicateName is returned by Save when another product already uses the name.
var ErrDuplicateName = errors.New("product name already exists")

// Direction is the ordering direction of a SortSpec.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec orders query results by a single field.
type SortSpec struct {
	Field     string
	Direction Direction
}

// SortByPrice returns a SortSpec on price with the given direction.
func SortByPrice(dir Direction) SortSpec {
	return SortSpec{Field: "price", Direction: dir}
}

// ProductRepository defines the interface for product data access.
// FindByID returns a nil product and a nil error when the id does not exist.
// DeleteByID does not report whether a row was removed.
type ProductRepository interface {
	FindAll(ctx context.Context, sort SortSpec) ([]models.Product, error)
	FindByNameContaining(ctx context.Context, name string, sort SortSpec) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	DeleteByID(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
