// Package store provides an interface for product storage operations.
package store

import (
	"context"
)

// Product represents a product row in the store.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int32
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Create adds a new product and assigns its id.
	Create(ctx context.Context, name string, price float64, quantity int32) (*Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Update overwrites name, price and quantity of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, name string, price float64, quantity int32) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// FindAll returns a slice of products in primary-key order.
	// The slice may be empty if the offset is beyond the last row.
	FindAll(ctx context.Context, offset, limit int32) ([]Product, error)

	// SearchByName returns all products whose name contains the given
	// substring, case-insensitively, in primary-key order.
	SearchByName(ctx context.Context, name string) ([]Product, error)

	// FindLowStock returns all products with quantity below the threshold.
	FindLowStock(ctx context.Context, threshold int32) ([]Product, error)
}
