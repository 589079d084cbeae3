package handlers

import (
	"errors"
	"strings"

	"produtos/internal/dto"
	"produtos/internal/models"
	"produtos/internal/repositories"
	"produtos/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts lists products sorted by price, optionally filtered by name.
// An empty result is a 200 with an empty list.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	direction := repositories.Asc
	if strings.EqualFold(c.Query("order", "asc"), "desc") {
		direction = repositories.Desc
	}
	sort := repositories.SortByPrice(direction)

	ctx := c.UserContext()
	name := c.Query("name")

	var (
		products []models.Product
		err      error
	)
	if name != "" {
		products, err = h.service.ListByName(ctx, name, sort)
	} else {
		products, err = h.service.ListAll(ctx, sort)
	}
	if err != nil {
		log.Errorf("Error listing products: %v", err)
		return err
	}
	return c.JSON(dto.ToResponseList(products))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	product, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		log.Errorf("Error getting product by ID %d: %v", id, err)
		return err
	}
	if product == nil {
		return notFound(c, &services.NotFoundError{ID: id})
	}
	return c.JSON(dto.ToResponse(*product))
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	req, err := parseProductRequest(c)
	if err != nil {
		return err
	}

	product := dto.ToModel(*req)
	created, err := h.service.Create(c.UserContext(), &product)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return duplicateName(c, err)
		}
		log.Errorf("Error creating product: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct replaces the editable fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	req, err := parseProductRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.UserContext(), id, dto.ToModel(*req))
	if err != nil {
		var nf *services.NotFoundError
		switch {
		case errors.As(err, &nf):
			return notFound(c, nf)
		case errors.Is(err, repositories.ErrDuplicateName):
			return duplicateName(c, err)
		}
		log.Errorf("Error updating product %d: %v", id, err)
		return err
	}
	return c.JSON(dto.ToResponse(*updated))
}

// HandleDeleteProduct deletes a product by its ID. Unknown IDs also get a 204.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		log.Errorf("Error deleting product %d: %v", id, err)
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// productID parses the :id path parameter, answering 400 when it is not an integer.
func productID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid product ID: "+c.Params("id"))
	}
	return int64(id), nil
}

// parseProductRequest binds and validates the request body. A malformed body
// is a 400 *fiber.Error; failed field checks come back as dto.FieldErrors,
// which middleware.ErrorHandler renders as a 400 with the field list.
func parseProductRequest(c *fiber.Ctx) (*dto.ProductCreateRequest, error) {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Debugf("Error parsing request body: %v", err)
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return &req, nil
}

func notFound(c *fiber.Ctx, err *services.NotFoundError) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": err.Error(),
	})
}

func duplicateName(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"message": "A product with this name already exists",
		"error":   err.Error(),
	})
}
