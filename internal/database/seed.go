package database

import (
	"context"
	"fmt"
	"time"

	"produtos/internal/models"
	"produtos/internal/repositories"

	"github.com/gofiber/fiber/v2/log"
)

func strPtr(s string) *string { return &s }

// Seed populates an empty product store with a few sample products.
// A store that already holds products is left untouched.
func Seed(ctx context.Context, repo repositories.ProductRepository) error {
	existing, err := repo.FindAll(ctx, repositories.SortByPrice(repositories.Asc))
	if err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(existing) > 0 {
		log.Infof("Skipping seed, %d products already stored", len(existing))
		return nil
	}

	products := []models.Product{
		{Name: "Laptop", Description: strPtr("High performance laptop"), Price: 1200.00, StockQuantity: 10},
		{Name: "Keyboard", Description: strPtr("Mechanical keyboard"), Price: 75.00, StockQuantity: 25},
		{Name: "Mouse", Description: strPtr("Ergonomic wireless mouse"), Price: 25.00, StockQuantity: 50},
	}
	for i := range products {
		products[i].CreatedAt = time.Now()
		if err := repo.Save(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		log.Infof("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
	}
	return nil
}
