// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package wishlist

import "time"

// Entry is one saved product on a user's wishlist.
//
// The wishlist is a set: a (user, product) pair appears at most once, and
// re-adding an already saved product is a silent no-op.
type Entry struct {
	UserID    string    `json:"-"`
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
