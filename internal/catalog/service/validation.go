package service

import (
	"strings"
	"unicode/utf8"

	caterrors "github.com/prodkit/catalog/internal/catalog/errors"
)

const (
	nameMaxLength = 100
	quantityMax   = 100000
)

// validateCreate checks one batch item. Checks run quantity, name, price —
// the order callers observe in error messages.
func validateCreate(request ProductRequest) *caterrors.BadRequestError {
	if !quantityValid(request.Quantity) {
		return caterrors.BadRequest("quantity", "Invalid quantity for product: %s", displayName(request.Name))
	}
	trimmed := trimmedName(request.Name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > nameMaxLength {
		return caterrors.BadRequest("name", "Invalid name for one of the products")
	}
	if request.Price == nil || *request.Price <= 0 {
		return caterrors.BadRequest("price", "Invalid price for product: %s", trimmed)
	}
	return nil
}

// validateUpdate checks an update payload. Checks run name presence, price,
// quantity lower bound, quantity upper bound.
func validateUpdate(request ProductRequest) *caterrors.BadRequestError {
	if trimmedName(request.Name) == "" {
		return caterrors.BadRequest("name", "Please enter a valid product name")
	}
	if request.Price == nil || *request.Price <= 0 {
		return caterrors.BadRequest("price", "Please enter a valid product price greater than 0")
	}
	if request.Quantity == nil || *request.Quantity <= 0 {
		return caterrors.BadRequest("quantity", "Please enter a valid product quantity greater than 0")
	}
	if *request.Quantity > quantityMax {
		return caterrors.BadRequest("quantity", "Please enter a valid product quantity less than 100001")
	}
	return nil
}

// quantityValid reports whether the quantity is within (0, 100000].
func quantityValid(quantity *int32) bool {
	return quantity != nil && *quantity > 0 && *quantity <= quantityMax
}

// trimmedName returns the name with surrounding whitespace removed, or ""
// when absent. Whitespace-only names count as absent: the trimmed form is
// what gets persisted and stored names must be non-empty.
func trimmedName(name *string) string {
	if name == nil {
		return ""
	}
	return strings.TrimSpace(*name)
}

// displayName identifies a product in an error message, falling back to a
// generic phrase when the name itself is unusable.
func displayName(name *string) string {
	if trimmed := trimmedName(name); trimmed != "" {
		return trimmed
	}
	return "one of the products"
}
