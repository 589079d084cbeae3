package dto_test

import (
	"strings"
	"testing"
	"time"

	"produtos/internal/dto"
	"produtos/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func validRequest() dto.ProductCreateRequest {
	return dto.ProductCreateRequest{
		Name:          ptr("Mouse"),
		Description:   ptr("Sem fio"),
		Price:         ptr(29.9),
		StockQuantity: ptr(10),
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validRequest().Validate())

	req := validRequest()
	req.Description = nil
	assert.Empty(t, req.Validate())

	req.Name = ptr(strings.Repeat("ç", 200))
	req.Description = ptr("")
	assert.Empty(t, req.Validate(), "limits count characters, not bytes")
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.ProductCreateRequest)
		want   dto.FieldError
	}{
		{"nil name", func(r *dto.ProductCreateRequest) { r.Name = nil },
			dto.FieldError{Field: "nome", Message: "O nome do produto não pode ser nulo"}},
		{"empty name", func(r *dto.ProductCreateRequest) { r.Name = ptr("") },
			dto.FieldError{Field: "nome", Message: "O nome deve ter entre 1 e 200 caracteres"}},
		{"long description", func(r *dto.ProductCreateRequest) { r.Description = ptr(strings.Repeat("x", 201)) },
			dto.FieldError{Field: "descricao", Message: "A descrição deve ter no máximo 200 caracteres"}},
		{"nil price", func(r *dto.ProductCreateRequest) { r.Price = nil },
			dto.FieldError{Field: "preco", Message: "O preço do produto não pode ser nulo"}},
		{"zero price", func(r *dto.ProductCreateRequest) { r.Price = ptr(0.0) },
			dto.FieldError{Field: "preco", Message: "O preço deve ser maior que zero"}},
		{"nil stock", func(r *dto.ProductCreateRequest) { r.StockQuantity = nil },
			dto.FieldError{Field: "quantidadeEstoque", Message: "A quantidade em estoque não pode ser nula"}},
		{"zero stock", func(r *dto.ProductCreateRequest) { r.StockQuantity = ptr(0) },
			dto.FieldError{Field: "quantidadeEstoque", Message: "A quantidade em estoque deve ser um número inteiro positivo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Equal(t, dto.FieldErrors{tt.want}, req.Validate())
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	errs := dto.FieldErrors{{Field: "preco", Message: "bad"}, {Field: "nome", Message: "worse"}}
	assert.Equal(t, "validation failed: preco: bad; nome: worse", errs.Error())
}

func TestToModel_LeavesGeneratedFieldsUnset(t *testing.T) {
	p := dto.ToModel(validRequest())

	assert.Zero(t, p.ID)
	assert.True(t, p.CreatedAt.IsZero())
	assert.Equal(t, "Mouse", p.Name)
	assert.Equal(t, "Sem fio", *p.Description)
	assert.Equal(t, 29.9, p.Price)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestToResponse(t *testing.T) {
	createdAt := time.Date(2024, 12, 31, 9, 5, 59, 0, time.Local)
	resp := dto.ToResponse(models.Product{
		ID: 3, Name: "Mouse", Price: 29.9, StockQuantity: 10, CreatedAt: createdAt,
	})

	assert.Equal(t, dto.ProductResponse{
		ID: 3, Name: "Mouse", Price: 29.9, StockQuantity: 10, CreatedAt: "31/12/2024 09:05",
	}, resp)
}

func TestToResponseList_PreservesOrder(t *testing.T) {
	assert.NotNil(t, dto.ToResponseList(nil))
	assert.Empty(t, dto.ToResponseList(nil))

	list := dto.ToResponseList([]models.Product{{ID: 9, Name: "B"}, {ID: 2, Name: "A"}})
	assert.Equal(t, int64(9), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}
