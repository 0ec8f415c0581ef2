package item

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/modifier"
)

// Level is an item level. Valid levels are 0 through the item's max level.
type Level = int64

// WorldID identifies the world an item belongs to. It is a plain
// back-reference: the item never calls into its world.
type WorldID string

// Item is one purchasable upgrade line.
//
// An Item does no locking of its own. Callers sharing an Item across
// goroutines must synchronize access (world.World does this).
type Item struct {
	world WorldID

	name            string
	description     string
	basePrice       *big.Int
	priceMultiplier float64
	level           Level
	maxLevel        Level

	// IDs of world-owned modifiers, in attach order
	modifiers []modifier.ID
}

// New creates an item with default values bound to the given world
func New(world WorldID) *Item {
	return &Item{
		world:           world,
		name:            DefaultName,
		description:     DefaultDescription,
		basePrice:       big.NewInt(DefaultBasePrice),
		priceMultiplier: DefaultPriceMultiplier,
		maxLevel:        MaxLevel,
	}
}

// NewNamed creates an item and validates its name like SetName does
func NewNamed(world WorldID, name string) (*Item, error) {
	it := New(world)
	if err := it.SetName(name); err != nil {
		return nil, err
	}
	return it, nil
}

// World returns the world this item was created for
func (it *Item) World() WorldID {
	return it.world
}

func (it *Item) Name() string {
	return it.name
}

// SetName replaces the name. Empty names are rejected.
func (it *Item) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgEmptyName)
	}
	it.name = name
	return nil
}

func (it *Item) Description() string {
	return it.description
}

func (it *Item) SetDescription(description string) {
	it.description = description
}

// BasePrice returns a copy of the base price
func (it *Item) BasePrice() *big.Int {
	return new(big.Int).Set(it.basePrice)
}

// SetBasePrice replaces the base price with a copy of price.
// Nil, zero and negative prices are rejected.
func (it *Item) SetBasePrice(price *big.Int) error {
	if price == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilBasePrice)
	}
	switch price.Sign() {
	case 0:
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgZeroBasePrice)
	case -1:
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeBasePrice)
	}
	it.basePrice = new(big.Int).Set(price)
	return nil
}

// SetBasePriceInt64 is SetBasePrice for machine integers
func (it *Item) SetBasePriceInt64(price int64) error {
	return it.SetBasePrice(big.NewInt(price))
}

func (it *Item) PriceMultiplier() float64 {
	return it.priceMultiplier
}

// SetPriceMultiplier replaces the per-level price multiplier.
// Negative, NaN and infinite values are rejected.
func (it *Item) SetPriceMultiplier(multiplier float64) error {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier < 0 {
		return fmt.Errorf("%w: %s, got %v", domain.ErrInvalidArgument, ErrMsgBadMultiplier, multiplier)
	}
	it.priceMultiplier = multiplier
	return nil
}

func (it *Item) MaxItemLevel() Level {
	return it.maxLevel
}

// SetMaxItemLevel replaces the level cap. If the current level is above
// the new cap it is clamped down to the cap.
func (it *Item) SetMaxItemLevel(maxLevel Level) error {
	if maxLevel <= 0 {
		return fmt.Errorf("%w: %s, got %d", domain.ErrInvalidArgument, ErrMsgNonPositiveMax, maxLevel)
	}
	it.maxLevel = maxLevel
	if it.level > maxLevel {
		it.level = maxLevel
	}
	return nil
}

func (it *Item) ItemLevel() Level {
	return it.level
}

// SetItemLevel jumps directly to level, which must be within [0, max].
func (it *Item) SetItemLevel(level Level) error {
	if level < 0 {
		return fmt.Errorf("%w: %s, got %d", domain.ErrInvalidArgument, ErrMsgNegativeLevel, level)
	}
	if level > it.maxLevel {
		return fmt.Errorf("%w: %s (%d > %d)", domain.ErrInvalidArgument, ErrMsgLevelAboveMax, level, it.maxLevel)
	}
	it.level = level
	return nil
}

// Upgrade raises the level by one. At the cap it does nothing and returns false.
func (it *Item) Upgrade() bool {
	if it.level >= it.maxLevel {
		return false
	}
	it.level++
	return true
}

// Downgrade lowers the level by one. At zero it does nothing and returns false.
func (it *Item) Downgrade() bool {
	if it.level <= 0 {
		return false
	}
	it.level--
	return true
}

// Maximize sets the level to the cap
func (it *Item) Maximize() {
	it.level = it.maxLevel
}

// IsMaxed reports whether the item is at its cap
func (it *Item) IsMaxed() bool {
	return it.level >= it.maxLevel
}

// Modifiers returns the attached modifier IDs in attach order
func (it *Item) Modifiers() []modifier.ID {
	return slices.Clone(it.modifiers)
}

// HasModifier reports whether id is attached
func (it *Item) HasModifier(id modifier.ID) bool {
	return slices.Contains(it.modifiers, id)
}

// AttachModifier appends id to the modifier list. Attaching an ID twice is a no-op.
func (it *Item) AttachModifier(id modifier.ID) {
	if it.HasModifier(id) {
		return
	}
	it.modifiers = append(it.modifiers, id)
}

// DetachModifier removes id, keeping the order of the rest
func (it *Item) DetachModifier(id modifier.ID) bool {
	idx := slices.Index(it.modifiers, id)
	if idx < 0 {
		return false
	}
	it.modifiers = slices.Delete(it.modifiers, idx, idx+1)
	return true
}
