package repository

import (
	"errors"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
)

// Top-level keys in the key-value store. Each repository owns exactly one.
const (
	KeyUsers            = "users"
	KeySessions         = "currentUser"
	KeyProducts         = "products"
	KeyProductsVersion  = "productsVersion"
	KeyOrders           = "orders"
	KeyCart             = "cart"
	KeyWishlist         = "wishlist"
	KeyComments         = "comments"
	KeySettings         = "settings"
	KeyWinterSaleBanner = "winterSaleBanner"
	KeyWinterSaleActive = "winterSaleActive"
)

// conflict maps an exhausted optimistic retry onto ErrConflict so callers do
// not need to import kvstore.
func conflict(err error) error {
	if errors.Is(err, kvstore.ErrVersionConflict) {
		return ErrConflict
	}
	return err
}
