// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tranducminh/shopline/internal/platform/request"
	"github.com/tranducminh/shopline/internal/platform/respond"
	"github.com/tranducminh/shopline/internal/platform/validate"
	"github.com/tranducminh/shopline/pkg/convert"
	"github.com/tranducminh/shopline/pkg/pagination"
	"github.com/tranducminh/shopline/pkg/query"
	"github.com/tranducminh/shopline/pkg/slice"
)

// Handler implements the catalog HTTP endpoints.
//
// # Scope
//
// Public discovery lives under /products; the administrative lifecycle lives
// under /admin/products. Access control for the admin surface is enforced by
// the route policy table, never inside this handler.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns the public, read-only catalog routes.
//
// # Endpoints
//   - GET /        : Paginated, filterable product listing.
//   - GET /{slug}  : Single product lookup by public slug.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{slug}", handler.getBySlug)

	return router
}

// AdminRoutes returns the administrative product lifecycle routes.
//
// # Endpoints
//   - POST   /        : Publish a new product.
//   - PUT    /{id}    : Partially update a product.
//   - DELETE /{id}    : Remove a product.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// productResponse is the public view of a product.
type productResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents"`
	Currency    string   `json:"currency"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
}

// toProductResponse maps the domain entity to its wire shape.
func toProductResponse(product *Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Currency:    product.Currency,
		Stock:       product.Stock,
		Tags:        product.Tags,
	}
}

// list handles GET /api/v1/products requests.
//
// # Query Parameters
//   - page, limit : Pagination (defaults 1 / 20).
//   - q           : Case-insensitive name search.
//   - tags        : Comma-separated tag list; all must match.
//   - min_price, max_price : Inclusive price bounds in cents.
//   - in_stock    : When truthy, hides out-of-stock products.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Query Extraction ───────────────────────────────────────────────

	params := pagination.FromRequest(request)

	filter := Filter{
		Query:       request.URL.Query().Get("q"),
		Tags:        query.StringSlice(request.URL.Query().Get("tags")),
		InStockOnly: convert.ToBool(request.URL.Query().Get("in_stock")),
	}

	if raw := request.URL.Query().Get("min_price"); raw != "" {
		minPrice := convert.ToInt64D(raw, 0)
		filter.MinPriceCents = &minPrice
	}
	if raw := request.URL.Query().Get("max_price"); raw != "" {
		maxPrice := convert.ToInt64D(raw, 0)
		filter.MaxPriceCents = &maxPrice
	}

	// ── 2. Application Execution ──────────────────────────────────────────

	products, meta, err := handler.catalogService.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Presentation Output ────────────────────────────────────────────

	respond.Paginated(writer, slice.Map(products, toProductResponse), meta)
}

// getBySlug handles GET /api/v1/products/{slug} requests.
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.catalogService.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toProductResponse(product))
}

// productRequest represents the JSON payload for product creation.
type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents"`
	Currency    string   `json:"currency"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
}

// create handles POST /api/v1/admin/products requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	err := validate.New().
		Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Positive("priceCents", input.PriceCents).
		Custom("stock", input.Stock < 0, "Stock cannot be negative").
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	product, err := handler.catalogService.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Currency:    input.Currency,
		Stock:       input.Stock,
		Tags:        input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, toProductResponse(product))
}

// updateProductRequest represents the JSON payload for a partial update.
// Absent fields keep their stored value.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	PriceCents  *int64   `json:"priceCents"`
	Currency    *string  `json:"currency"`
	Stock       *int     `json:"stock"`
	Tags        []string `json:"tags"`
}

// update handles PUT /api/v1/admin/products/{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateProductRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.catalogService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput{
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Currency:    input.Currency,
		Stock:       input.Stock,
		Tags:        input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toProductResponse(product))
}

// remove handles DELETE /api/v1/admin/products/{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.catalogService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
