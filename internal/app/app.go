// Package app assembles the products service from its configuration.
package app

import (
	"context"
	"strings"
	"time"

	"produtos/internal/config"
	"produtos/internal/database"
	"produtos/internal/handlers"
	"produtos/internal/middleware"
	"produtos/internal/repositories"
	"produtos/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// App is the running service: the Fiber application and the store behind it.
type App struct {
	Fiber *fiber.App
	Repo  repositories.ProductRepository
	db    *gorm.DB
}

// New opens the configured store, seeds it when requested and builds the
// HTTP application.
func New(cfg *config.Config) (*App, error) {
	log.SetLevel(logLevel(cfg.LogLevel))

	a := &App{}
	if cfg.DBDriver == config.DriverMemory {
		a.Repo = repositories.NewMemoryProductRepository()
	} else {
		db, err := database.Open(cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.Repo = repositories.NewGORMProductRepository(db)
	}

	if cfg.SeedProducts {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.Seed(ctx, a.Repo); err != nil {
			if closeErr := a.Close(); closeErr != nil {
				log.Errorf("Error closing database: %v", closeErr)
			}
			return nil, err
		}
	}

	a.Fiber = NewFiberApp(a.Repo)
	return a, nil
}

// NewFiberApp wires the service and handlers around repo.
func NewFiberApp(repo repositories.ProductRepository) *fiber.App {
	productService := services.NewProductService(repo)
	productHandler := handlers.NewProductHandler(productService)

	app := fiber.New(fiber.Config{
		AppName:      "produtos",
		ErrorHandler: middleware.ErrorHandler,
	})
	middleware.Register(app)

	app.Get("/health", healthHandler(repo))
	productHandler.RegisterRoutes(app)

	return app
}

// Shutdown stops accepting requests, waiting at most timeout for in-flight ones.
func (a *App) Shutdown(timeout time.Duration) error {
	return a.Fiber.ShutdownWithTimeout(timeout)
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return database.Close(a.db)
}

func logLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
