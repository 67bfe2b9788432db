package usecase

import (
	"errors"
)

// Domain errors, matched by handlers with errors.Is and mapped to HTTP
// status codes. Anything else propagates upward unchanged and surfaces as
// a generic 500.
var (
	ErrBookNotFound       = errors.New("book not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrPurchasedItem      = errors.New("cannot modify purchased items in cart")
	ErrAlreadyInWishlist  = errors.New("book already in wishlist")
	ErrNotInWishlist      = errors.New("book not found in wishlist")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrAddressNotFound    = errors.New("address not found")
	ErrNotOwner           = errors.New("address does not belong to user")
)
