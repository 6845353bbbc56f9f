// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	caterrors "github.com/prodkit/catalog/internal/catalog/errors"
	"github.com/prodkit/catalog/internal/catalog/store"
	"github.com/prodkit/catalog/pkg/messaging"
	"github.com/prodkit/catalog/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// CreateProducts validates and persists each request item in order.
	// Returns a BadRequestError for an empty batch or on the first invalid
	// item; items persisted before the failure are kept (the batch is not
	// transactional).
	CreateProducts(ctx context.Context, requests []ProductRequest) ([]ProductDto, error)

	// UpdateProduct overwrites all fields of an existing product.
	// Returns a NotFoundError if no product exists with the given ID; the
	// existence check runs before payload validation.
	UpdateProduct(ctx context.Context, id int64, request ProductRequest) (*ProductDto, error)

	// DeleteProduct removes a product by its ID.
	// Returns a NotFoundError if no product exists with the given ID.
	DeleteProduct(ctx context.Context, id int64) error

	// FindByID retrieves a single product by its unique identifier.
	// Returns a NotFoundError if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns one page of products plus pagination metadata.
	// Page and size are normalized (nil or < 1 become 1 and 10). An empty
	// page, including a page beyond range, is a NotFoundError.
	FindAll(ctx context.Context, page, size *int32) (*ProductPageDto, error)

	// SearchByName returns products whose name contains the given string,
	// case-insensitively. A blank query is a NotFoundError; an empty result
	// is not.
	SearchByName(ctx context.Context, name string) ([]ProductDto, error)

	// FindLowStock returns products with quantity below the threshold.
	// A nil or non-positive threshold is a NotFoundError; an empty result
	// is not.
	FindLowStock(ctx context.Context, quantity *int32) ([]ProductDto, error)
}

const (
	defaultPage = 1
	defaultSize = 10
)

// Service implements ProductService and provides methods to manage products.
type Service struct {
	store           store.ProductStore
	publisher       messaging.Publisher
	logger          *slog.Logger
	productsCreated metric.Int64Counter
}

// NewService creates a new instance of ProductService with the provided store and publisher.
func NewService(productStore store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	meter := otel.Meter("catalog-service")
	productsCreated, err := meter.Int64Counter("products_created",
		metric.WithDescription("Total number of created products"))
	if err != nil {
		panic(fmt.Sprintf("failed to create products_created counter: %v", err))
	}
	return &Service{
		store:           productStore,
		publisher:       publisher,
		logger:          logger.With("component", "service"),
		productsCreated: productsCreated,
	}
}

// ProductRequest represents the data transfer object for creating or updating
// a product. Fields are pointers so absence is distinguishable from zero.
type ProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int32   `json:"quantity"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

// PaginationDto carries the pagination metadata of one product page.
type PaginationDto struct {
	TotalElements int64 `json:"totalElements"`
	CurrentPage   int32 `json:"currentPage"`
	PageSize      int32 `json:"pageSize"`
	TotalPages    int64 `json:"totalPages"`
}

// ProductPageDto is one page of products plus its pagination metadata.
type ProductPageDto struct {
	Products   []ProductDto  `json:"products"`
	Pagination PaginationDto `json:"pagination"`
}

// CreateProducts validates and persists each request item in order.
// Items persisted before the first invalid one are kept.
func (s *Service) CreateProducts(ctx context.Context, requests []ProductRequest) ([]ProductDto, error) {
	if len(requests) == 0 {
		return nil, caterrors.BadRequest("error", "Product list cannot be empty")
	}

	created := make([]ProductDto, 0, len(requests))
	for _, request := range requests {
		if vErr := validateCreate(request); vErr != nil {
			return nil, vErr
		}
		product, err := s.store.Create(ctx, trimmedName(request.Name), *request.Price, *request.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
		s.productsCreated.Add(ctx, 1)
		s.publishCreated(ctx, product)
		created = append(created, *toDto(product))
	}
	return created, nil
}

// UpdateProduct overwrites all fields of an existing product and returns the updated product.
func (s *Service) UpdateProduct(ctx context.Context, id int64, request ProductRequest) (*ProductDto, error) {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, caterrors.ErrProductNotFound) {
			return nil, caterrors.NotFound("Product with id: %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	if vErr := validateUpdate(request); vErr != nil {
		return nil, vErr
	}

	updated, err := s.store.Update(ctx, id, trimmedName(request.Name), *request.Price, *request.Quantity)
	if err != nil {
		if errors.Is(err, caterrors.ErrProductNotFound) {
			return nil, caterrors.NotFound("Product with id: %d not found", id)
		}
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}
	return toDto(updated), nil
}

// DeleteProduct removes a product by its ID. Deletes are not idempotent: a
// second delete of the same id reports not found.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, caterrors.ErrProductNotFound) {
			return caterrors.NotFound("Product with id: %d not found", id)
		}
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, caterrors.ErrProductNotFound) {
			return nil, caterrors.NotFound("Product with id: %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toDto(product), nil
}

// FindAll retrieves one page of products plus pagination metadata.
func (s *Service) FindAll(ctx context.Context, page, size *int32) (*ProductPageDto, error) {
	currentPage := normalize(page, defaultPage)
	pageSize := normalize(size, defaultSize)

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	products, err := s.store.FindAll(ctx, (currentPage-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if len(products) == 0 {
		return nil, caterrors.NotFound("No products found")
	}

	return &ProductPageDto{
		Products:   toDtos(products),
		Pagination: newPagination(total, currentPage, pageSize),
	}, nil
}

// SearchByName retrieves products whose name contains the given string, case-insensitively.
func (s *Service) SearchByName(ctx context.Context, name string) ([]ProductDto, error) {
	if name == "" {
		return nil, caterrors.NotFound("No products found")
	}
	products, err := s.store.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name %q: %w", name, err)
	}
	return toDtos(products), nil
}

// FindLowStock retrieves products with quantity below the threshold.
func (s *Service) FindLowStock(ctx context.Context, quantity *int32) ([]ProductDto, error) {
	if quantity == nil || *quantity <= 0 {
		return nil, caterrors.NotFound("Please enter a valid quantity greater than 0")
	}
	products, err := s.store.FindLowStock(ctx, *quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch low stock products: %w", err)
	}
	return toDtos(products), nil
}

// publishCreated announces a persisted product. The write already happened,
// so a lost event must not fail the request.
func (s *Service) publishCreated(ctx context.Context, product *store.Product) {
	if s.publisher == nil {
		return
	}
	event := events.ProductCreatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  product.Quantity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish product created event", "ID", product.ID, "error", err)
	}
}

// newPagination derives the pagination metadata for one page.
func newPagination(totalElements int64, currentPage, pageSize int32) PaginationDto {
	totalPages := totalElements / int64(pageSize)
	if totalElements%int64(pageSize) > 0 {
		totalPages++
	}
	return PaginationDto{
		TotalElements: totalElements,
		CurrentPage:   currentPage,
		PageSize:      pageSize,
		TotalPages:    totalPages,
	}
}

// normalize applies the fallback for an absent or non-positive page parameter.
func normalize(value *int32, fallback int32) int32 {
	if value == nil || *value < 1 {
		return fallback
	}
	return *value
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
}

func toDtos(products []store.Product) []ProductDto {
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs
}
