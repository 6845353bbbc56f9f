package store

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	caterrors "github.com/prodkit/catalog/internal/catalog/errors"
)

// inMemory implements ProductStore using an in-memory map.
// Ids are assigned in increasing order, so iteration in id order matches
// insertion order, like the primary-key order of the SQL implementation.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore backed by a map.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[int64]Product),
		nextID:   1,
	}
}

func (s *inMemory) Create(_ context.Context, name string, price float64, quantity int32) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:       s.nextID,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	s.nextID++
	s.products[product.ID] = product

	return &product, nil
}

func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, caterrors.ErrProductNotFound
	}
	return &p, nil
}

func (s *inMemory) Update(_ context.Context, id int64, name string, price float64, quantity int32) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return nil, caterrors.ErrProductNotFound
	}
	product := Product{ID: id, Name: name, Price: price, Quantity: quantity}
	s.products[id] = product
	return &product, nil
}

func (s *inMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return caterrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *inMemory) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.products)), nil
}

func (s *inMemory) FindAll(_ context.Context, offset, limit int32) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := s.ordered()
	if int(offset) >= len(ordered) {
		return []Product{}, nil
	}
	end := min(int(offset)+int(limit), len(ordered))
	return ordered[offset:end], nil
}

func (s *inMemory) SearchByName(_ context.Context, name string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(name)
	matches := make([]Product, 0)
	for _, p := range s.ordered() {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *inMemory) FindLowStock(_ context.Context, threshold int32) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Product, 0)
	for _, p := range s.ordered() {
		if p.Quantity < threshold {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// ordered returns all products in id order. Callers must hold the lock.
func (s *inMemory) ordered() []Product {
	list := make([]Product, 0, len(s.products))
	for _, id := range slices.Sorted(maps.Keys(s.products)) {
		list = append(list, s.products[id])
	}
	return list
}
