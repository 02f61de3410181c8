package domain

import "errors"

// Sentinel errors for the whole domain. The HTTP layer maps these to status
// codes in a single place (internal/api/error_handler.go).
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReviewNotFound  = errors.New("review not found")

	// ErrNotOwner is returned when the requester is neither the resource
	// owner nor an admin. Rendered as 401, not 403.
	ErrNotOwner = errors.New("not authorized to access this resource")

	ErrEmailTaken     = errors.New("user with this email already exists")
	ErrProfileExists  = errors.New("user already has an artist profile")
	ErrDuplicateKey   = errors.New("duplicate field value entered")
	ErrInvalidID      = errors.New("resource not found")
	ErrInvalidLogin   = errors.New("invalid email or password")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidPayment = errors.New("invalid payment method")

	ErrDuplicateBooking    = errors.New("this artist is already booked for this event")
	ErrArtistUnavailable   = errors.New("artist is not available on this date")
	ErrPaymentCompleted    = errors.New("payment has already been completed")
	ErrBookingNotCompleted = errors.New("can only review completed bookings")
	ErrDuplicateReview     = errors.New("user has already reviewed this booking")
)
