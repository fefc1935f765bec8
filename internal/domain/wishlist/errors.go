package wishlist

import "household-app-go/internal/apperr"

var (
	// ErrWishlistNotFound is also what slug lookups on private wishlists
	// return: an unauthenticated caller cannot tell "missing" from
	// "exists but not public".
	ErrWishlistNotFound    = apperr.NotFound("wishlist not found")
	ErrItemNotFound        = apperr.NotFound("wishlist item not found")
	ErrTitleRequired       = apperr.Validation("wishlist title is required")
	ErrItemNameRequired    = apperr.Validation("item name is required")
	ErrInvalidVisibility   = apperr.Validation("invalid wishlist visibility")
	ErrReservationEmail    = apperr.Validation("email is required to reserve an item")
	ErrReservationMismatch = apperr.Unauthorized("email does not match the reservation")
)
