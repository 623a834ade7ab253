// Package service implements the logged-in shopper flows (cart, wishlist,
// checkout, reviews) and the admin order and promotion controls.
package service

import (
	"errors"

	"github.com/iliyamo/progear-storefront/internal/auth"
)

// User-facing failures. Error() is the message shown to the shopper.
var (
	ErrEmptyCart           = errors.New("Your cart is empty")
	ErrOrderLoginRequired  = errors.New("Please login to place an order")
	ErrInvalidQuantity     = errors.New("Quantity must be between 1 and 99")
	ErrNotOwner            = errors.New("Unauthorized")
	ErrOrderNotCancellable = errors.New("Cannot cancel this order")
	ErrInvalidStatus       = errors.New("Invalid order status")
	ErrInvalidReview       = errors.New("Please choose a rating between 1 and 5")
	ErrInvalidSetting      = errors.New("Invalid setting value")
	ErrInvalidCheckout     = errors.New("Address and payment method are required")
	ErrInvalidExport       = errors.New("Unknown export type")
	ErrProductNotFound     = errors.New("Product not found")
	ErrOrderNotFound       = errors.New("Order not found")
)

// Re-exported so callers of this package need only one import for gating.
var (
	ErrLoginRequired = auth.ErrLoginRequired
	ErrAdminRequired = auth.ErrAdminRequired
)

// IsUserFacing reports whether err should be shown to the shopper as is.
func IsUserFacing(err error) bool {
	for _, e := range []error{
		ErrEmptyCart, ErrOrderLoginRequired, ErrInvalidQuantity, ErrNotOwner,
		ErrOrderNotCancellable, ErrInvalidStatus, ErrInvalidReview, ErrInvalidSetting,
		ErrInvalidCheckout, ErrInvalidExport, ErrProductNotFound, ErrOrderNotFound,
		ErrLoginRequired, ErrAdminRequired,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return auth.IsUserFacing(err)
}
