package services

import "fmt"

// NotFoundError is returned when no product exists with the requested ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Produto não encontrado com id: %d", e.ID)
}
