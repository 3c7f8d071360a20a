// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package cart

import "time"

// Item is one line of a shopping cart: a product reference plus quantity.
// Price and name are denormalized at add time so the cart renders without a
// catalog round-trip; the checkout flow re-verifies against the catalog.
type Item struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`
	Quantity   int    `json:"quantity"`
}

// Cart is a user's volatile shopping cart as stored in Redis.
//
// # Rules
//   - One cart per user, keyed by the owner's user ID.
//   - Items are unique per product; re-adding a product replaces the
//     quantity instead of appending a duplicate line.
//   - Any write refreshes the cart's TTL; untouched carts expire.
type Cart struct {
	UserID    string    `json:"user_id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalCents sums the cart's line totals.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// upsert replaces the quantity of an existing line or appends a new one.
func (c *Cart) upsert(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i] = item
			return
		}
	}
	c.Items = append(c.Items, item)
}

// remove deletes the line for the given product. Reports whether a line
// was actually present.
func (c *Cart) remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
