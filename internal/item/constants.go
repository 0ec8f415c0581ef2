package item

import "math"

// ==================== Defaults ====================

const (
	DefaultName            = "Nameless Item"
	DefaultDescription     = "No description."
	DefaultPriceMultiplier = 1.145
	DefaultBasePrice       = 1
)

// MaxLevel is the default level cap
const MaxLevel Level = math.MaxInt64

// ==================== Pricing ====================

const (
	// PricePrecision is the mantissa size of the float used for multiplier^level
	PricePrecision = 256

	// MaxPriceBits bounds the size of a derived price. Anything larger is
	// reported as domain.ErrPriceOutOfRange instead of being materialized.
	MaxPriceBits = 1 << 20
)

// ==================== Error Messages ====================

const (
	ErrMsgEmptyName          = "item name cannot be empty"
	ErrMsgNilBasePrice       = "base price cannot be nil"
	ErrMsgZeroBasePrice      = "base price cannot be zero"
	ErrMsgNegativeBasePrice  = "base price cannot be negative"
	ErrMsgBadMultiplier      = "price multiplier must be a finite non-negative number"
	ErrMsgNonPositiveMax     = "max item level cannot be zero or negative"
	ErrMsgNegativeLevel      = "item level cannot be negative"
	ErrMsgLevelAboveMax      = "item level cannot be greater than max item level"
	ErrMsgNegativeCount      = "level count cannot be negative"
	ErrFmtPriceTooLarge      = "%w: price at level %d exceeds %d bits"
	ErrFmtLevelRangeOverflow = "%w: level range %d+%d overflows"
)
