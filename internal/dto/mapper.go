package dto

import "produtos/internal/models"

// ToModel converts a create request into a product. ID and CreatedAt are
// left zero for storage and the service to assign.
func ToModel(req ProductCreateRequest) models.Product {
	product := models.Product{
		Description: req.Description,
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	return product
}

// ToResponse converts a product into its client representation.
func ToResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt.Local().Format(DateTimeLayout),
	}
}

// ToResponseList converts products element-wise, keeping their order.
func ToResponseList(products []models.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToResponse(p))
	}
	return result
}
