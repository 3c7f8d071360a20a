// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package wishlist

import "context"

// WishlistRepository defines the data access contract for wishlists.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresWishlistRepository]).
// Tests substitute an in-memory fake.
type WishlistRepository interface {
	// List returns the user's saved entries, newest first.
	List(ctx context.Context, userID string) ([]*Entry, error)

	// Add saves a product to the user's wishlist. Adding a product that is
	// already saved is a no-op, not an error.
	Add(ctx context.Context, userID, productID string) error

	// Remove deletes a saved product.
	//
	// Returns [apperr.NotFound] if the product was not on the wishlist.
	Remove(ctx context.Context, userID, productID string) error
}
