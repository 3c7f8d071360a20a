// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranducminh/shopline/internal/platform/apperr"
)

// PostgresWishlistRepository implements WishlistRepository using pgx.
type PostgresWishlistRepository struct {
	pool *pgxpool.Pool
}

// NewWishlistRepository constructs a PostgreSQL backed wishlist store.
func NewWishlistRepository(pool *pgxpool.Pool) *PostgresWishlistRepository {
	return &PostgresWishlistRepository{pool: pool}
}

// List returns the user's saved entries, newest first.
func (repository *PostgresWishlistRepository) List(ctx context.Context, userID string) ([]*Entry, error) {
	const query = `
		SELECT userid, productid, addedat
		FROM wishlist_item
		WHERE userid = $1
		ORDER BY addedat DESC`

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_wishlist_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(&entry.UserID, &entry.ProductID, &entry.AddedAt); err != nil {
			return nil, fmt.Errorf("postgres_wishlist_repo_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_wishlist_repo_rows_failed: %w", err)
	}

	return entries, nil
}

// Add saves a product idempotently. The composite primary key plus
// ON CONFLICT DO NOTHING makes concurrent double-adds harmless.
func (repository *PostgresWishlistRepository) Add(ctx context.Context, userID, productID string) error {
	const query = `
		INSERT INTO wishlist_item (userid, productid, addedat)
		VALUES ($1, $2, $3)
		ON CONFLICT (userid, productid) DO NOTHING`

	if _, err := repository.pool.Exec(ctx, query, userID, productID, time.Now()); err != nil {
		return fmt.Errorf("postgres_wishlist_repo_add_failed: %w", err)
	}

	return nil
}

// Remove deletes a saved product.
func (repository *PostgresWishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	const query = `DELETE FROM wishlist_item WHERE userid = $1 AND productid = $2`

	result, err := repository.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return fmt.Errorf("postgres_wishlist_repo_remove_failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Wishlist entry")
	}

	return nil
}
