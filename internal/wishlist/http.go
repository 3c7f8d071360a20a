// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package wishlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tranducminh/shopline/internal/platform/request"
	"github.com/tranducminh/shopline/internal/platform/respond"
)

// Handler implements the wishlist HTTP endpoints.
//
// All routes are gated to authenticated callers by the route policy table;
// the wishlist owner is always the request principal.
type Handler struct {
	wishlistService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{wishlistService: service}
}

// Routes returns a [chi.Router] configured with wishlist routes.
//
// # Endpoints
//   - GET    /              : List saved products.
//   - PUT    /{productID}   : Save a product (idempotent).
//   - DELETE /{productID}   : Remove a saved product.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/{productID}", handler.add)
	router.Delete("/{productID}", handler.remove)

	return router
}

// list handles GET /api/v1/wishlist requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.wishlistService.List(request.Context(), principal.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if entries == nil {
		entries = []*Entry{}
	}
	respond.OK(writer, entries)
}

// add handles PUT /api/v1/wishlist/{productID} requests. Saving a product
// that is already on the list is a no-op.
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.wishlistService.Add(request.Context(), principal.UserID, requestutil.Param(request, "productID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// remove handles DELETE /api/v1/wishlist/{productID} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.wishlistService.Remove(request.Context(), principal.UserID, requestutil.Param(request, "productID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
