// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

// Package wishlist implements the per-user saved products set.
package wishlist

import (
	"context"

	"github.com/tranducminh/shopline/internal/catalog"
)

// ProductFinder is the slice of the catalog the wishlist needs: verifying a
// product reference before saving it.
type ProductFinder interface {
	GetByID(ctx context.Context, id string) (*catalog.Product, error)
}

// Service implements the wishlist use cases.
type Service struct {
	wishlistRepository WishlistRepository
	products           ProductFinder
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(wishlistRepo WishlistRepository, products ProductFinder) *Service {
	return &Service{
		wishlistRepository: wishlistRepo,
		products:           products,
	}
}

// List returns the caller's saved entries, newest first.
func (service *Service) List(ctx context.Context, userID string) ([]*Entry, error) {
	return service.wishlistRepository.List(ctx, userID)
}

// Add saves a product to the caller's wishlist.
//
// # Business Rules
//   - The product must exist in the catalog.
//   - Adding an already saved product succeeds silently (set semantics),
//     which keeps the operation safe to retry.
func (service *Service) Add(ctx context.Context, userID, productID string) error {
	if _, err := service.products.GetByID(ctx, productID); err != nil {
		return err
	}

	return service.wishlistRepository.Add(ctx, userID, productID)
}

// Remove deletes a saved product from the caller's wishlist.
func (service *Service) Remove(ctx context.Context, userID, productID string) error {
	return service.wishlistRepository.Remove(ctx, userID, productID)
}
