// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranducminh/shopline/internal/catalog"
	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/pkg/pagination"
	"github.com/tranducminh/shopline/pkg/pointer"
)

// memoryProductRepository is the in-memory ProductRepository fake.
type memoryProductRepository struct {
	products []*catalog.Product
}

func (r *memoryProductRepository) List(_ context.Context, filter catalog.Filter, limit, offset int) ([]*catalog.Product, int, error) {
	var matched []*catalog.Product
	for _, product := range r.products {
		if filter.Query != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.InStockOnly && product.Stock == 0 {
			continue
		}
		if filter.MinPriceCents != nil && product.PriceCents < *filter.MinPriceCents {
			continue
		}
		if filter.MaxPriceCents != nil && product.PriceCents > *filter.MaxPriceCents {
			continue
		}
		if !hasAllTags(product.Tags, filter.Tags) {
			continue
		}
		matched = append(matched, product)
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func hasAllTags(have, want []string) bool {
	for _, tag := range want {
		found := false
		for _, existing := range have {
			if existing == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *memoryProductRepository) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			copied := *product
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Product")
}

func (r *memoryProductRepository) FindBySlug(_ context.Context, slug string) (*catalog.Product, error) {
	for _, product := range r.products {
		if product.Slug == slug {
			copied := *product
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Product")
}

func (r *memoryProductRepository) Create(_ context.Context, product *catalog.Product) error {
	for _, existing := range r.products {
		if existing.Slug == product.Slug {
			return apperr.Conflict("A product with this slug already exists")
		}
	}
	copied := *product
	r.products = append(r.products, &copied)
	return nil
}

func (r *memoryProductRepository) Update(_ context.Context, product *catalog.Product) error {
	for i, existing := range r.products {
		if existing.ID == product.ID {
			copied := *product
			r.products[i] = &copied
			return nil
		}
	}
	return apperr.NotFound("Product")
}

func (r *memoryProductRepository) Delete(_ context.Context, id string) error {
	for i, existing := range r.products {
		if existing.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Product")
}

func newCatalogService() (*catalog.Service, *memoryProductRepository) {
	repo := &memoryProductRepository{}
	return catalog.NewService(repo), repo
}

/*
TestService_Create derives the slug from the name and defaults the currency.
*/
func TestService_Create(t *testing.T) {
	service, _ := newCatalogService()

	product, err := service.Create(context.Background(), catalog.CreateInput{
		Name:       "Café Crème Beans 1kg",
		PriceCents: 1850,
		Stock:      40,
		Tags:       []string{"coffee"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "cafe-creme-beans-1kg", product.Slug)
	assert.Equal(t, "EUR", product.Currency)
}

/*
TestService_Create_SlugCollision surfaces the store conflict unchanged.
*/
func TestService_Create_SlugCollision(t *testing.T) {
	service, _ := newCatalogService()
	ctx := context.Background()

	_, err := service.Create(ctx, catalog.CreateInput{Name: "Widget", PriceCents: 100})
	require.NoError(t, err)

	_, err = service.Create(ctx, catalog.CreateInput{Name: "Widget", PriceCents: 200})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 409, appError.HTTPStatus)
}

/*
TestService_List paginates and filters.
*/
func TestService_List(t *testing.T) {
	service, _ := newCatalogService()
	ctx := context.Background()

	for _, input := range []catalog.CreateInput{
		{Name: "Espresso Cup", PriceCents: 900, Stock: 5, Tags: []string{"coffee", "ceramic"}},
		{Name: "Filter Paper", PriceCents: 300, Stock: 0, Tags: []string{"coffee"}},
		{Name: "Tea Pot", PriceCents: 2500, Stock: 2, Tags: []string{"tea"}},
	} {
		_, err := service.Create(ctx, input)
		require.NoError(t, err)
	}

	t.Run("all", func(t *testing.T) {
		products, meta, err := service.List(ctx, catalog.Filter{}, pagination.Params{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, 3, meta.Total)
		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("tag_filter", func(t *testing.T) {
		products, meta, err := service.List(ctx, catalog.Filter{Tags: []string{"coffee"}}, pagination.Params{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, 2, meta.Total)
	})

	t.Run("in_stock_and_price", func(t *testing.T) {
		products, _, err := service.List(ctx, catalog.Filter{
			InStockOnly:   true,
			MaxPriceCents: pointer.To(int64(1000)),
		}, pagination.Params{Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Espresso Cup", products[0].Name)
	})
}

/*
TestService_Update applies partial changes, regenerates the slug on rename,
and guards the stock floor.
*/
func TestService_Update(t *testing.T) {
	service, _ := newCatalogService()
	ctx := context.Background()

	created, err := service.Create(ctx, catalog.CreateInput{Name: "Old Name", PriceCents: 1000, Stock: 5})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, catalog.UpdateInput{
		Name:       pointer.To("New Name"),
		PriceCents: pointer.To(int64(1200)),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new-name", updated.Slug)
	assert.EqualValues(t, 1200, updated.PriceCents)
	assert.Equal(t, 5, updated.Stock) // untouched field survives

	_, err = service.Update(ctx, created.ID, catalog.UpdateInput{Stock: pointer.To(-1)})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 422, appError.HTTPStatus)
}

/*
TestService_Delete removes a product; a second delete 404s.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newCatalogService()
	ctx := context.Background()

	created, err := service.Create(ctx, catalog.CreateInput{Name: "Doomed", PriceCents: 100})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	err = service.Delete(ctx, created.ID)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}
