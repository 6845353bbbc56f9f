// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	caterrors "github.com/prodkit/catalog/internal/catalog/errors"
	"github.com/prodkit/catalog/internal/catalog/service"
	"github.com/prodkit/catalog/pkg/web"
)

type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new instance of the product REST API with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Get("/search", h.SearchByName)
		r.Get("/low-stock", h.FindLowStock)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Create handles the batch creation of products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var requests []service.ProductRequest
	if !web.DecodeBody(w, r, mLogger, &requests) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create products", "count", len(requests))
	created, err := h.service.CreateProducts(r.Context(), requests)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Products created successfully", "count", len(created))
	web.RespondSuccess(w, mLogger, http.StatusCreated, "Products created successfully", created)
}

// Update overwrites a product's fields by its ID.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var request service.ProductRequest
	if !web.DecodeBody(w, r, mLogger, &request) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	updated, err := h.service.UpdateProduct(r.Context(), id, request)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondSuccess(w, mLogger, http.StatusOK,
		fmt.Sprintf("Product ID: %d has been updated successfully", id), updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondSuccess(w, mLogger, http.StatusOK,
		fmt.Sprintf("Product ID: %d has been deleted successfully", id), nil)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondSuccess(w, mLogger, http.StatusOK,
		fmt.Sprintf("Product ID: %d fetched successfully", id), found)
}

// FindAll retrieves one page of products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page, ok := web.ParseOptionalInt32(w, r, mLogger, "page")
	if !ok {
		return
	}
	size, ok := web.ParseOptionalInt32(w, r, mLogger, "size")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to find all products")
	productPage, err := h.service.FindAll(r.Context(), page, size)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product page", "count", len(productPage.Products))
	web.RespondSuccess(w, mLogger, http.StatusOK, "Products fetched successfully", productPage)
}

// SearchByName retrieves products whose name contains the query string.
func (h *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	name := r.URL.Query().Get("name")
	mLogger.DebugContext(r.Context(), "Received request to search products by name", "name", name)
	found, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully searched products", "name", name, "count", len(found))
	web.RespondSuccess(w, mLogger, http.StatusOK,
		fmt.Sprintf("Products matching name '%s' fetched successfully", name), found)
}

// FindLowStock retrieves products with quantity below the given threshold.
func (h *Handler) FindLowStock(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	quantity, ok := web.ParseOptionalInt32(w, r, mLogger, "quantity")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to find low stock products")
	found, err := h.service.FindLowStock(r.Context(), quantity)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved low stock products", "count", len(found))
	web.RespondSuccess(w, mLogger, http.StatusOK,
		fmt.Sprintf("Products with quantity less than %d fetched successfully", *quantity), found)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondServiceError maps service errors to the problem envelope. This is
// the only place domain errors become HTTP status codes.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var badRequest *caterrors.BadRequestError
	if errors.As(err, &badRequest) {
		logger.WarnContext(r.Context(), "Request validation failed", "field", badRequest.Field, "error", badRequest.Message)
		web.RespondProblem(w, r, logger, http.StatusBadRequest, map[string]string{
			badRequest.Field: badRequest.Message,
		})
		return
	}
	var notFound *caterrors.NotFoundError
	if errors.As(err, &notFound) {
		logger.WarnContext(r.Context(), "Resource not found", "error", notFound.Message)
		web.RespondProblem(w, r, logger, http.StatusNotFound, map[string]string{
			"error": notFound.Message,
		})
		return
	}
	if errors.Is(err, caterrors.ErrProductNotFound) {
		logger.WarnContext(r.Context(), "Product not found", "error", err)
		web.RespondProblem(w, r, logger, http.StatusNotFound, map[string]string{
			"error": "Product not found",
		})
		return
	}
	logger.ErrorContext(r.Context(), "Unhandled service error", "error", err)
	web.RespondProblem(w, r, logger, http.StatusInternalServerError, map[string]string{
		"error": "Something went wrong",
	})
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
