package world

import (
	"fmt"
	"math/big"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/modifier"
)

// Price returns the named item's next-level price with its price
// modifiers applied in attach order, rounded down
func (w *World) Price(name string) (*big.Int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	it, ok := w.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return w.priceAt(it, it.ItemLevel())
}

// PriceAt is Price for an arbitrary level
func (w *World) PriceAt(name string, level item.Level) (*big.Int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	it, ok := w.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return w.priceAt(it, level)
}

// Refund applies the named item's refund modifiers to base, rounded down
func (w *World) Refund(name string, base *big.Int) (*big.Int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	it, ok := w.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return w.refund(it, new(big.Float).SetPrec(uint(base.BitLen())+modifier.Precision).SetInt(base)), nil
}

func (w *World) refund(it *item.Item, value *big.Float) *big.Int {
	return modifier.Floor(modifier.Pipeline(value, w.modifiersFor(it, modifier.TargetRefund)...))
}

func (w *World) priceAt(it *item.Item, level item.Level) (*big.Int, error) {
	raw, err := it.PriceFloat(level)
	if err != nil {
		return nil, err
	}
	mods := w.modifiersFor(it, modifier.TargetPrice)
	if len(mods) == 0 {
		out, _ := raw.Int(nil)
		return out, nil
	}
	return modifier.Floor(modifier.Pipeline(raw, mods...)), nil
}

// Pricer prices a single item from inside a ViewPriced or UpdatePriced
// callback, where the world lock is already held
type Pricer struct {
	w  *World
	it *item.Item
}

// PriceAt is World.PriceAt for the callback's item
func (p Pricer) PriceAt(level item.Level) (*big.Int, error) {
	return p.w.priceAt(p.it, level)
}

// Refund applies the item's refund modifiers to value, rounded down
func (p Pricer) Refund(value *big.Float) *big.Int {
	return p.w.refund(p.it, value)
}

// Revision is the world revision the callback observes
func (p Pricer) Revision() uint64 {
	return p.w.revision
}

// ViewPriced is View with a Pricer for the item
func (w *World) ViewPriced(name string, fn func(*item.Item, Pricer) error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	it, ok := w.items[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return fn(it, Pricer{w: w, it: it})
}

// UpdatePriced is Update with a Pricer for the item, so a price can be
// read and acted on without another writer getting in between
func (w *World) UpdatePriced(name string, fn func(*item.Item, Pricer) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, ok := w.items[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return w.apply(it, func() error { return fn(it, Pricer{w: w, it: it}) })
}
