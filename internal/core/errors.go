package core

import "fmt"

// ConflictError is returned when creating an item whose SKU already exists.
type ConflictError struct {
	SKU string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Item with SKU %s already exists", e.SKU)
}

// NotFoundError is returned when editing or deleting an unknown SKU.
type NotFoundError struct {
	SKU string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Item with SKU %s not found", e.SKU)
}
