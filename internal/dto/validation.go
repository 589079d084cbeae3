package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is an ordered list of field failures. It implements error so
// it can travel through error returns.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks every field of the request and returns the failures in
// field order. A nil result means the request is valid.
func (r ProductCreateRequest) Validate() FieldErrors {
	var errs FieldErrors
	add := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	switch {
	case r.Name == nil:
		add("nome", "O nome do produto não pode ser nulo")
	case validate.Var(*r.Name, "min=1,max=200") != nil:
		add("nome", "O nome deve ter entre 1 e 200 caracteres")
	}

	if r.Description != nil && validate.Var(*r.Description, "max=200") != nil {
		add("descricao", "A descrição deve ter no máximo 200 caracteres")
	}

	switch {
	case r.Price == nil:
		add("preco", "O preço do produto não pode ser nulo")
	case validate.Var(*r.Price, "gt=0") != nil:
		add("preco", "O preço deve ser maior que zero")
	}

	switch {
	case r.StockQuantity == nil:
		add("quantidadeEstoque", "A quantidade em estoque não pode ser nula")
	case validate.Var(*r.StockQuantity, "gt=0") != nil:
		add("quantidadeEstoque", "A quantidade em estoque deve ser um número inteiro positivo")
	}

	return errs
}
