// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package catalog

import "time"

// Product represents a sellable item in the catalog.
//
// # Rules
//   - Slug is the public, SEO-friendly identifier; it is unique and derived
//     from the name at creation time.
//   - PriceCents stores money as an integer amount of the smallest currency
//     unit. Floats never touch prices.
//   - Stock is a non-negative availability counter maintained by admins;
//     carts do not reserve stock.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Stock       int       `json:"stock"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	// Query matches against product names, case-insensitive substring.
	Query string

	// Tags requires every listed tag to be present on the product.
	Tags []string

	// MinPriceCents / MaxPriceCents bound the price range inclusively.
	// Nil disables the bound.
	MinPriceCents *int64
	MaxPriceCents *int64

	// InStockOnly hides products with zero stock.
	InStockOnly bool
}
