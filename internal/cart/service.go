// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

// Package cart implements the per-user shopping cart.
//
// # Architecture
//
// Carts are volatile documents in Redis with a rolling TTL; the catalog is
// consulted on every mutation so a cart can never reference a product that
// no longer exists at add time.
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/platform/constants"
	"github.com/tranducminh/shopline/internal/catalog"
)

// ProductFinder is the slice of the catalog the cart needs: verifying that
// a product reference is real and capturing its current price.
type ProductFinder interface {
	GetByID(ctx context.Context, id string) (*catalog.Product, error)
}

// Service implements the shopping cart use cases.
type Service struct {
	cartRepository CartRepository
	products       ProductFinder
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(cartRepo CartRepository, products ProductFinder) *Service {
	return &Service{
		cartRepository: cartRepo,
		products:       products,
	}
}

// Get returns the caller's cart, empty if nothing was ever added.
func (service *Service) Get(ctx context.Context, userID string) (*Cart, error) {
	return service.cartRepository.Get(ctx, userID)
}

// UpsertItem sets the quantity of a product in the caller's cart, adding the
// line if absent.
//
// # Business Rules
//   - The product must exist in the catalog at the time of the write.
//   - Quantity is bounded by [constants.MaxCartQuantity].
//   - Quantity zero removes the line, making PUT-to-zero and DELETE
//     equivalent for clients.
func (service *Service) UpsertItem(ctx context.Context, userID, productID string, quantity int) (*Cart, error) {
	// ── 1. Input Bounds ───────────────────────────────────────────────────

	if quantity < 0 {
		return nil, apperr.Unprocessable("Quantity cannot be negative")
	}
	if quantity > constants.MaxCartQuantity {
		return nil, apperr.Unprocessable(fmt.Sprintf("Quantity cannot exceed %d", constants.MaxCartQuantity))
	}

	// ── 2. Catalog Verification ───────────────────────────────────────────

	product, err := service.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// ── 3. Cart Mutation ──────────────────────────────────────────────────

	cart, err := service.cartRepository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity == 0 {
		cart.remove(productID)
	} else {
		cart.upsert(Item{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Currency:   product.Currency,
			Quantity:   quantity,
		})
	}
	cart.UpdatedAt = time.Now()

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.cartRepository.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem deletes one product line from the caller's cart.
//
// Returns [apperr.NotFound] if the product is not in the cart.
func (service *Service) RemoveItem(ctx context.Context, userID, productID string) (*Cart, error) {
	cart, err := service.cartRepository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.remove(productID) {
		return nil, apperr.NotFound("Cart item")
	}
	cart.UpdatedAt = time.Now()

	if err := service.cartRepository.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Clear drops the caller's cart entirely. Clearing an empty cart succeeds.
func (service *Service) Clear(ctx context.Context, userID string) error {
	return service.cartRepository.Delete(ctx, userID)
}
