// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

// Package catalog implements the product catalog: public discovery plus
// administrative lifecycle management.
//
// # Architecture
//
// The service orchestrates domain entities and talks to storage through the
// [ProductRepository] interface. It is technology-agnostic and does not know
// about HTTP or SQL.
package catalog

import (
	"context"
	"fmt"

	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/pkg/pagination"
	"github.com/tranducminh/shopline/pkg/pointer"
	"github.com/tranducminh/shopline/pkg/slug"
	"github.com/tranducminh/shopline/pkg/uuidv7"
)

// Service implements the catalog use cases.
type Service struct {
	productRepository ProductRepository
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(productRepo ProductRepository) *Service {
	return &Service{productRepository: productRepo}
}

// List returns one page of products matching the filter, plus pagination
// metadata computed from the total match count.
func (service *Service) List(ctx context.Context, filter Filter, params pagination.Params) ([]*Product, pagination.Meta, error) {
	products, total, err := service.productRepository.List(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("catalog_service_list_failed: %w", err)
	}

	return products, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// GetBySlug returns a single product by its public slug.
func (service *Service) GetBySlug(ctx context.Context, productSlug string) (*Product, error) {
	return service.productRepository.FindBySlug(ctx, productSlug)
}

// GetByID returns a single product by its primary key. Cart and wishlist
// collaborators use it to verify product references before storing them.
func (service *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	return service.productRepository.FindByID(ctx, id)
}

// CreateInput holds the data required to publish a new product.
type CreateInput struct {
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	Stock       int
	Tags        []string
}

// Create publishes a brand new product.
//
// # Business Rules
//   - The slug is derived from the name; collisions surface as Conflict.
//   - Currency defaults to EUR when omitted.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Product, error) {
	currency := input.Currency
	if currency == "" {
		currency = "EUR"
	}

	product := &Product{
		ID:          uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Currency:    currency,
		Stock:       input.Stock,
		Tags:        input.Tags,
	}

	if err := service.productRepository.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateInput describes a partial product update. Nil fields keep their
// current value.
type UpdateInput struct {
	Name        *string
	Description *string
	PriceCents  *int64
	Currency    *string
	Stock       *int
	Tags        []string
}

// Update applies a partial update to an existing product.
//
// Renaming a product regenerates its slug so the public URL always reflects
// the current name.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Product, error) {
	product, err := service.productRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		product.Slug = slug.From(*input.Name)
	}
	product.Description = pointer.Fallback(input.Description, product.Description)
	product.PriceCents = pointer.Fallback(input.PriceCents, product.PriceCents)
	product.Currency = pointer.Fallback(input.Currency, product.Currency)
	product.Stock = pointer.Fallback(input.Stock, product.Stock)
	if input.Tags != nil {
		product.Tags = input.Tags
	}

	if product.Stock < 0 {
		return nil, apperr.Unprocessable("Stock cannot be negative")
	}

	if err := service.productRepository.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product from the catalog permanently.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.productRepository.Delete(ctx, id)
}
