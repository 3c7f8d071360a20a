// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package catalog

import "context"

// ProductRepository defines the data access contract for catalog products.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresProductRepository]).
// Tests substitute an in-memory fake.
type ProductRepository interface {
	// List returns a filtered, paginated slice of products plus the total
	// count matching the filter (ignoring pagination).
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Product, int, error)

	// FindByID returns the product with the given ID.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindBySlug returns the product with the given public slug.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// Create persists a new product.
	//
	// Returns [apperr.Conflict] if the slug is already taken.
	Create(ctx context.Context, product *Product) error

	// Update persists modifications to an existing product.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	Update(ctx context.Context, product *Product) error

	// Delete removes a product permanently.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	Delete(ctx context.Context, id string) error
}
