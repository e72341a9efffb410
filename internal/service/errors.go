package service

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Every error returned by the services matches exactly one of
// these with errors.Is.
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("access denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDuplicateBid     = errors.New("you have already bid on this gig")
	ErrSelfBidForbidden = errors.New("you cannot bid on your own gig")
	ErrValidation       = errors.New("invalid input")
	ErrInternal         = errors.New("internal server error")
)

// Specific errors, each wrapping its category.
var (
	ErrGigNotFound       = fmt.Errorf("gig %w", ErrNotFound)
	ErrBidNotFound       = fmt.Errorf("bid %w", ErrNotFound)
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrGigNotAvailable   = fmt.Errorf("%w: gig not available for bidding", ErrInvalidOperation)
	ErrGigNotOpen        = fmt.Errorf("%w: gig is no longer available", ErrInvalidOperation)
	ErrBidNotPending     = fmt.Errorf("%w: bid is no longer pending", ErrInvalidOperation)
	ErrBidAlreadyDecided = fmt.Errorf("%w: cannot withdraw bid that has been processed", ErrInvalidOperation)

	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrInvalidOperation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
)

// validationError reports bad caller input as ErrValidation with a readable message.
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// PublicMessage is the text shown to API clients: the specific part of a
// wrapped error, or the category message itself.
func PublicMessage(err error) string {
	msg := err.Error()
	for _, category := range []error{ErrInvalidOperation, ErrValidation, ErrUnauthenticated} {
		if errors.Is(err, category) {
			if trimmed := strings.TrimPrefix(msg, category.Error()+": "); trimmed != "" {
				return trimmed
			}
		}
	}
	return msg
}
