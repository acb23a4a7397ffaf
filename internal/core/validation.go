package core

// validation.go checks item input before any store call.
//
// Rules run in a fixed order and stop at the first failure, so a request
// with several problems always reports the same single message.

import "fmt"

// ReservedSKUs collide with fixed route segments under /api/item.
var ReservedSKUs = map[string]bool{
	"list":   true,
	"export": true,
}

// ValidationError represents a single rule violation on item input.
type ValidationError struct {
	Field   string // Input field the rule checks
	Message string // Human-readable error message
}

// Error returns the rule message alone; clients see it verbatim.
func (e *ValidationError) Error() string {
	return e.Message
}

// IsReservedSKU reports whether sku is one of the route words.
func IsReservedSKU(sku string) bool {
	return ReservedSKUs[sku]
}

// ValidateCreate checks, in order: sku present, sku not reserved, name
// present, description present, count positive.
func ValidateCreate(in CreateInput) error {
	if in.SKU == "" {
		return &ValidationError{Field: "sku", Message: "SKU cannot be empty"}
	}
	if IsReservedSKU(in.SKU) {
		return &ValidationError{
			Field:   "sku",
			Message: fmt.Sprintf("SKU cannot be the reserved word %q", in.SKU),
		}
	}
	return validateDetails(in.Name, in.Description, in.Count)
}

// ValidateUpdate checks name, description and count with the create rules.
func ValidateUpdate(in UpdateInput) error {
	return validateDetails(in.Name, in.Description, in.Count)
}

func validateDetails(name, description string, count int) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "Name cannot be empty"}
	}
	if description == "" {
		return &ValidationError{Field: "description", Message: "Description cannot be empty"}
	}
	if count <= 0 {
		return &ValidationError{Field: "count", Message: "There must be at least one of this item"}
	}
	return nil
}
