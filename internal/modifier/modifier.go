package modifier

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Clicker_Go/internal/domain"
)

// ID identifies a modifier inside the world that owns it.
// The zero value never refers to a live modifier.
type ID uint64

// Target selects which derived item value a modifier alters
type Target string

const (
	// TargetPrice alters the price of the next level
	TargetPrice Target = "price"

	// TargetRefund alters the amount paid back when a level is sold
	TargetRefund Target = "refund"
)

// Type defines how a modifier transforms a value
type Type string

const (
	// TypeMultiplicative: value * (1 + Value)
	// Example: 100 * (1 + -0.25) = 75
	TypeMultiplicative Type = "multiplicative"

	// TypeLinear: value + Value
	// Example: 100 + 20 = 120
	TypeLinear Type = "linear"

	// TypeFixed: Value (ignores the input)
	// Example: 100 -> 5
	TypeFixed Type = "fixed"
)

// Modifier is an externally owned adjustment that items reference by ID
type Modifier struct {
	ID     ID       `json:"id"`
	Name   string   `json:"name" validate:"required,max=100"`
	Target Target   `json:"target" validate:"required,oneof=price refund"`
	Type   Type     `json:"type" validate:"required,oneof=multiplicative linear fixed"`
	Value  float64  `json:"value"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

var validate = validator.New()

// Validate checks the modifier definition. Failures wrap domain.ErrInvalidArgument.
func (m *Modifier) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: modifier is nil", domain.ErrInvalidArgument)
	}
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return fmt.Errorf("%w: modifier %q has non-finite value", domain.ErrInvalidArgument, m.Name)
	}
	for _, bound := range []*float64{m.Min, m.Max} {
		if bound != nil && (math.IsNaN(*bound) || math.IsInf(*bound, 0)) {
			return fmt.Errorf("%w: modifier %q has non-finite bound", domain.ErrInvalidArgument, m.Name)
		}
	}
	if m.Min != nil && m.Max != nil && *m.Min > *m.Max {
		return fmt.Errorf("%w: modifier %q has min greater than max", domain.ErrInvalidArgument, m.Name)
	}
	return nil
}
