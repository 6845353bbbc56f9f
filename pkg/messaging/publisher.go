// Package messaging defines the event publishing contract.
package messaging

import (
	"context"
)

// ProductsCreatedSubject is the subject products are announced on after a
// successful insert.
const ProductsCreatedSubject = "catalog.products.created"

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, _ Event) error { return nil }
