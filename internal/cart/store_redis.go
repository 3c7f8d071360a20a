// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tranducminh/shopline/internal/platform/constants"
)

// RedisCartRepository implements CartRepository using Redis.
//
// # Storage Shape
//
// Each cart is a single JSON document under `cart:<userID>` with a rolling
// TTL. One document per cart keeps reads and writes to a single round-trip
// and makes the whole cart expire atomically.
type RedisCartRepository struct {
	client *redis.Client
}

// NewCartRepository creates a new Redis-backed CartRepository.
func NewCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

// Get returns the user's cart, or a fresh empty cart when none is stored.
func (repository *RedisCartRepository) Get(ctx context.Context, userID string) (*Cart, error) {
	key := constants.RedisPrefixCart + userID

	payload, err := repository.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Absence is the normal state for a user who never added anything.
			return &Cart{UserID: userID, Items: []Item{}}, nil
		}
		return nil, fmt.Errorf("redis_cart_get_failed: %w", err)
	}

	cart := &Cart{}
	if err := json.Unmarshal(payload, cart); err != nil {
		return nil, fmt.Errorf("redis_cart_decode_failed: %w", err)
	}

	return cart, nil
}

// Save writes the cart document and resets its TTL to the full window.
func (repository *RedisCartRepository) Save(ctx context.Context, cart *Cart) error {
	key := constants.RedisPrefixCart + cart.UserID

	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("redis_cart_encode_failed: %w", err)
	}

	if err := repository.client.Set(ctx, key, payload, constants.CartTTL).Err(); err != nil {
		return fmt.Errorf("redis_cart_set_failed: %w", err)
	}

	return nil
}

// Delete removes the user's cart document.
func (repository *RedisCartRepository) Delete(ctx context.Context, userID string) error {
	key := constants.RedisPrefixCart + userID

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_cart_delete_failed: %w", err)
	}

	return nil
}
