package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidArgument = "invalid argument"

	// Item errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgDuplicateItem     = "item already exists"
	ErrMsgMaxLevelReached   = "item is at max level"
	ErrMsgNothingToSell     = "item has no levels to sell"
	ErrMsgPriceOutOfRange   = "price out of range"
	ErrMsgModifierNotFound  = "modifier not found"
	ErrMsgInsufficientFunds = "insufficient funds"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidArgument is returned by every setter that rejects a value.
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItem   = errors.New(ErrMsgDuplicateItem)
	ErrMaxLevelReached = errors.New(ErrMsgMaxLevelReached)
	ErrNothingToSell   = errors.New(ErrMsgNothingToSell)
	ErrPriceOutOfRange = errors.New(ErrMsgPriceOutOfRange)

	// Modifier errors
	ErrModifierNotFound = errors.New(ErrMsgModifierNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
)
