// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tranducminh/shopline/internal/platform/request"
	"github.com/tranducminh/shopline/internal/platform/respond"
	"github.com/tranducminh/shopline/internal/platform/validate"
)

// Handler implements the shopping cart HTTP endpoints.
//
// All routes are gated to authenticated callers by the route policy table;
// the handler derives the cart owner exclusively from the request principal,
// never from the payload.
type Handler struct {
	cartService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{cartService: service}
}

// Routes returns a [chi.Router] configured with cart routes.
//
// # Endpoints
//   - GET    /                     : Current cart contents.
//   - PUT    /items                : Upsert a product line.
//   - DELETE /items/{productID}    : Remove a product line.
//   - DELETE /                     : Clear the cart.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.Put("/items", handler.upsertItem)
	router.Delete("/items/{productID}", handler.removeItem)
	router.Delete("/", handler.clear)

	return router
}

// cartResponse is the wire shape of a cart, with the computed total.
type cartResponse struct {
	Items      []Item `json:"items"`
	TotalCents int64  `json:"totalCents"`
}

func toCartResponse(cart *Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []Item{}
	}
	return cartResponse{Items: items, TotalCents: cart.TotalCents()}
}

// get handles GET /api/v1/cart requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cart, err := handler.cartService.Get(request.Context(), principal.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toCartResponse(cart))
}

// upsertItemRequest represents the JSON payload for a cart line write.
type upsertItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// upsertItem handles PUT /api/v1/cart/items requests.
func (handler *Handler) upsertItem(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input upsertItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.ProductID == "" {
		respond.Error(writer, request, validate.RequiredError("productId", "is required"))
		return
	}

	cart, err := handler.cartService.UpsertItem(request.Context(), principal.UserID, input.ProductID, input.Quantity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toCartResponse(cart))
}

// removeItem handles DELETE /api/v1/cart/items/{productID} requests.
func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cart, err := handler.cartService.RemoveItem(request.Context(), principal.UserID, requestutil.Param(request, "productID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toCartResponse(cart))
}

// clear handles DELETE /api/v1/cart requests.
func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.cartService.Clear(request.Context(), principal.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
