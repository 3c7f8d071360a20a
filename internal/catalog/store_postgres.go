// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/platform/dberr"
)

// PostgresProductRepository implements the ProductRepository interface using pgx.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository constructs a PostgreSQL backed catalog store.
func NewProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

const productColumns = `id, name, slug, description, pricecents, currency, stock, tags, createdat, updatedat`

// List returns a filtered, paginated slice of products and the total count.
//
// # Query Shape
//
// A COUNT(*) OVER() window function yields the total matching count in the
// same round-trip as the page itself. The WHERE clause is built dynamically
// from the populated filter fields; all values ride positional parameters.
func (repository *PostgresProductRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(`
		SELECT ` + productColumns + `, COUNT(*) OVER() AS total_count
		FROM product
		WHERE 1=1`)

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	// Tag filter: the product must carry every requested tag (array containment).
	if len(filter.Tags) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND tags @> $%d", argID))
		args = append(args, filter.Tags)
		argID++
	}

	if filter.MinPriceCents != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND pricecents >= $%d", argID))
		args = append(args, *filter.MinPriceCents)
		argID++
	}

	if filter.MaxPriceCents != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND pricecents <= $%d", argID))
		args = append(args, *filter.MaxPriceCents)
		argID++
	}

	if filter.InStockOnly {
		queryBuilder.WriteString(" AND stock > 0")
	}

	// UUIDv7 primary keys are time-sortable, so ordering by id is newest-last
	// and stable across pages.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY createdat DESC, id DESC LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var products []*Product
	var totalCount int

	for rows.Next() {
		product := &Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Slug,
			&product.Description,
			&product.PriceCents,
			&product.Currency,
			&product.Stock,
			&product.Tags,
			&product.CreatedAt,
			&product.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_product_repo_scan_failed: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_rows_failed: %w", err)
	}

	return products, totalCount, nil
}

// FindByID retrieves a product record by its primary key.
func (repository *PostgresProductRepository) FindByID(ctx context.Context, id string) (*Product, error) {
	const query = `SELECT ` + productColumns + ` FROM product WHERE id = $1`

	return repository.scanOne(repository.pool.QueryRow(ctx, query, id), "find_by_id")
}

// FindBySlug retrieves a product record by its public slug. Used on
// customer-facing URLs where the internal UUID never appears.
func (repository *PostgresProductRepository) FindBySlug(ctx context.Context, slug string) (*Product, error) {
	const query = `SELECT ` + productColumns + ` FROM product WHERE slug = $1`

	return repository.scanOne(repository.pool.QueryRow(ctx, query, slug), "find_by_slug")
}

// Create persists a new product. The unique index on slug rejects duplicates.
func (repository *PostgresProductRepository) Create(ctx context.Context, product *Product) error {
	const query = `
		INSERT INTO product (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.PriceCents,
		product.Currency,
		product.Stock,
		product.Tags,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("A product with this slug already exists")
		}
		return fmt.Errorf("postgres_product_repo_create_failed: %w", err)
	}

	return nil
}

// Update persists a full-row replacement of an existing product.
func (repository *PostgresProductRepository) Update(ctx context.Context, product *Product) error {
	const query = `
		UPDATE product
		SET name = $2, slug = $3, description = $4, pricecents = $5,
		    currency = $6, stock = $7, tags = $8, updatedat = $9
		WHERE id = $1`

	product.UpdatedAt = time.Now()

	result, err := repository.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.PriceCents,
		product.Currency,
		product.Stock,
		product.Tags,
		product.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("A product with this slug already exists")
		}
		return fmt.Errorf("postgres_product_repo_update_failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}

	return nil
}

// Delete removes a product permanently. Wishlist references cascade at the
// schema level.
func (repository *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM product WHERE id = $1`

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_product_repo_delete_failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}

	return nil
}

// scanOne maps a single product row.
func (repository *PostgresProductRepository) scanOne(row pgx.Row, operation string) (*Product, error) {
	product := &Product{}

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.PriceCents,
		&product.Currency,
		&product.Stock,
		&product.Tags,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product")
		}
		return nil, fmt.Errorf("postgres_product_repo_%s_failed: %w", operation, err)
	}

	return product, nil
}
