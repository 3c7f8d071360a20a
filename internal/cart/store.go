// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package cart

import "context"

// CartRepository defines the data access contract for shopping carts.
//
// # Implementations
//
// The canonical implementation is Redis ([RedisCartRepository]): carts are
// volatile by design and evaporate after the TTL. Tests substitute an
// in-memory fake.
type CartRepository interface {
	// Get returns the user's cart. A missing or expired cart is not an
	// error; it comes back as an empty cart owned by the user.
	Get(ctx context.Context, userID string) (*Cart, error)

	// Save writes the cart document and refreshes its TTL.
	Save(ctx context.Context, cart *Cart) error

	// Delete removes the user's cart entirely. Deleting an absent cart
	// is a no-op.
	Delete(ctx context.Context, userID string) error
}
