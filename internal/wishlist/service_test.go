// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package wishlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranducminh/shopline/internal/catalog"
	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/wishlist"
)

// memoryWishlistRepository is the in-memory WishlistRepository fake with
// the same set semantics as the Postgres implementation.
type memoryWishlistRepository struct {
	entries []*wishlist.Entry
}

func (r *memoryWishlistRepository) List(_ context.Context, userID string) ([]*wishlist.Entry, error) {
	var result []*wishlist.Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			result = append(result, r.entries[i])
		}
	}
	return result, nil
}

func (r *memoryWishlistRepository) Add(_ context.Context, userID, productID string) error {
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.ProductID == productID {
			return nil
		}
	}
	r.entries = append(r.entries, &wishlist.Entry{UserID: userID, ProductID: productID, AddedAt: time.Now()})
	return nil
}

func (r *memoryWishlistRepository) Remove(_ context.Context, userID, productID string) error {
	for i, entry := range r.entries {
		if entry.UserID == userID && entry.ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Wishlist entry")
}

// stubCatalog serves a fixed product set.
type stubCatalog struct{}

func (stubCatalog) GetByID(_ context.Context, id string) (*catalog.Product, error) {
	if id == "p1" || id == "p2" {
		return &catalog.Product{ID: id, Name: "Product " + id}, nil
	}
	return nil, apperr.NotFound("Product")
}

func newWishlistService() *wishlist.Service {
	return wishlist.NewService(&memoryWishlistRepository{}, stubCatalog{})
}

/*
TestService_Add_IsIdempotent keeps set semantics: double-add succeeds and
yields a single entry.
*/
func TestService_Add_IsIdempotent(t *testing.T) {
	service := newWishlistService()
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, "u1", "p1"))
	require.NoError(t, service.Add(ctx, "u1", "p1"))

	entries, err := service.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

/*
TestService_Add_UnknownProduct refuses to save dangling references.
*/
func TestService_Add_UnknownProduct(t *testing.T) {
	service := newWishlistService()

	err := service.Add(context.Background(), "u1", "ghost")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

/*
TestService_Remove deletes a saved product; removing it again 404s.
*/
func TestService_Remove(t *testing.T) {
	service := newWishlistService()
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, "u1", "p1"))
	require.NoError(t, service.Remove(ctx, "u1", "p1"))

	err := service.Remove(ctx, "u1", "p1")
	assert.NotNil(t, apperr.As(err))
}

/*
TestService_ListsAreIsolated keeps wishlists per user.
*/
func TestService_ListsAreIsolated(t *testing.T) {
	service := newWishlistService()
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, "u1", "p1"))
	require.NoError(t, service.Add(ctx, "u2", "p2"))

	entries, err := service.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
}
