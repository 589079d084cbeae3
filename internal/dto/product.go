// Package dto holds the JSON shapes of the products API and the
// conversions between them and models.Product.
package dto

// DateTimeLayout renders dataCriacao as dd/MM/yyyy HH:mm.
const DateTimeLayout = "02/01/2006 15:04"

// ProductCreateRequest is the body accepted by create and update.
// Pointer fields distinguish a missing value from a zero one.
type ProductCreateRequest struct {
	Name          *string  `json:"nome"`
	Description   *string  `json:"descricao"`
	Price         *float64 `json:"preco"`
	StockQuantity *int     `json:"quantidadeEstoque"`
}

// ProductResponse is the representation of a product returned to clients.
type ProductResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"nome"`
	Description   *string `json:"descricao"`
	Price         float64 `json:"preco"`
	StockQuantity int     `json:"quantidadeEstoque"`
	CreatedAt     string  `json:"dataCriacao"`
}
