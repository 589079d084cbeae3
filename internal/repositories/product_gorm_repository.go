package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"produtos/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns maps SortSpec fields to table columns.
var sortColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"price":         "price",
	"stockQuantity": "stock_quantity",
	"createdAt":     "created_at",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindAll retrieves all products ordered by sort.
func (r *GORMProductRepository) FindAll(ctx context.Context, sort SortSpec) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.ordered(ctx, sort).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByNameContaining retrieves the products whose name contains name, ignoring case.
func (r *GORMProductRepository) FindByNameContaining(ctx context.Context, name string, sort SortSpec) ([]models.Product, error) {
	products := []models.Product{}
	pattern := "%" + escapeLike(strings.ToLower(name)) + "%"
	err := r.ordered(ctx, sort).
		Where(r.lowerFunc()+`(name) LIKE ? ESCAPE '\'`, pattern).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by name %q: %w", name, err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Save inserts the product when it has no ID yet and updates it otherwise.
// gorm's Save falls back to an upsert when the update matches no row, so a
// product deleted after it was read is written back under the same ID.
func (r *GORMProductRepository) Save(ctx context.Context, product *models.Product) error {
	var err error
	if product.ID == 0 {
		err = r.db.WithContext(ctx).Create(product).Error
	} else {
		err = r.db.WithContext(ctx).Save(product).Error
	}
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateName, product.Name)
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// DeleteByID deletes a product by its ID. Deleting a missing product is not an error.
func (r *GORMProductRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (r *GORMProductRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *GORMProductRepository) ordered(ctx context.Context, sort SortSpec) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if column, ok := sortColumns[sort.Field]; ok {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   sort.Direction == Desc,
		})
	}
	return tx.Order("id")
}

// lowerFunc names the SQL function that lowercases like strings.ToLower.
// On SQLite that is unicode_lower, registered by the database package driver.
func (r *GORMProductRepository) lowerFunc() string {
	if r.db.Dialector.Name() == "sqlite" {
		return "unicode_lower"
	}
	return "LOWER"
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// isDuplicateKey reports unique constraint violations. TranslateError covers
// postgres and sqlite; the message check catches drivers that don't translate.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
