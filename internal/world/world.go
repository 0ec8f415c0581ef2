package world

import (
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/modifier"
)

// World owns a set of items and the modifiers they reference.
// All access to items goes through World, which serializes it.
type World struct {
	id item.WorldID

	mu        sync.RWMutex
	items     map[string]*item.Item
	order     []string
	modifiers map[modifier.ID]*modifier.Modifier
	nextModID modifier.ID
	revision  uint64
}

// New creates an empty world with a random ID
func New() *World {
	return &World{
		id:        item.WorldID(uuid.NewString()),
		items:     make(map[string]*item.Item),
		modifiers: make(map[modifier.ID]*modifier.Modifier),
		nextModID: 1,
	}
}

func (w *World) ID() item.WorldID {
	return w.id
}

// Revision increases on every mutation made through the world
func (w *World) Revision() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.revision
}

// ItemOption configures an item while it is being added
type ItemOption func(*item.Item) error

func WithDescription(description string) ItemOption {
	return func(it *item.Item) error {
		it.SetDescription(description)
		return nil
	}
}

func WithBasePrice(price *big.Int) ItemOption {
	return func(it *item.Item) error { return it.SetBasePrice(price) }
}

func WithPriceMultiplier(multiplier float64) ItemOption {
	return func(it *item.Item) error { return it.SetPriceMultiplier(multiplier) }
}

func WithMaxLevel(maxLevel item.Level) ItemOption {
	return func(it *item.Item) error { return it.SetMaxItemLevel(maxLevel) }
}

func WithLevel(level item.Level) ItemOption {
	return func(it *item.Item) error { return it.SetItemLevel(level) }
}

// AddItem creates a named item in this world. Options run in order;
// the item is only registered if all of them succeed.
func (w *World) AddItem(name string, opts ...ItemOption) error {
	it, err := item.NewNamed(w.id, name)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		if err := opt(it); err != nil {
			return fmt.Errorf("item %q: %w", name, err)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.items[name]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateItem, name)
	}
	w.items[name] = it
	w.order = append(w.order, name)
	w.revision++
	return nil
}

// RemoveItem drops an item. Its modifiers stay in the world.
func (w *World) RemoveItem(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.items[name]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	delete(w.items, name)
	w.order = slices.DeleteFunc(w.order, func(n string) bool { return n == name })
	w.revision++
	return nil
}

// Names returns item names in insertion order
func (w *World) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.order)
}

// View calls fn with the named item under a read lock.
// fn must not mutate the item or call back into the world.
func (w *World) View(name string, fn func(*item.Item)) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	it, ok := w.items[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	fn(it)
	return nil
}

// Update calls fn with the named item under the write lock.
// fn must not call back into the world.
func (w *World) Update(name string, fn func(*item.Item) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, ok := w.items[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return w.apply(it, func() error { return fn(it) })
}

// apply runs fn and bumps the revision when it succeeds or when it
// changed the item's level before failing
func (w *World) apply(it *item.Item, fn func() error) error {
	before := it.ItemLevel()
	err := fn()
	if err == nil || it.ItemLevel() != before {
		w.revision++
	}
	return err
}

// Snapshots returns views of every item in insertion order
func (w *World) Snapshots() []item.View {
	w.mu.RLock()
	defer w.mu.RUnlock()

	views := make([]item.View, 0, len(w.order))
	for _, name := range w.order {
		views = append(views, w.items[name].Snapshot())
	}
	return views
}
