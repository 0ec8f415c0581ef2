package world

import (
	"fmt"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/modifier"
)

// AddModifier validates m, stores a copy and returns its new ID
func (w *World) AddModifier(m modifier.Modifier) (modifier.ID, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	m.ID = w.nextModID
	w.nextModID++
	w.modifiers[m.ID] = &m
	w.revision++
	return m.ID, nil
}

// Modifier returns a copy of the modifier with the given ID
func (w *World) Modifier(id modifier.ID) (modifier.Modifier, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	m, ok := w.modifiers[id]
	if !ok {
		return modifier.Modifier{}, fmt.Errorf("%w: %d", domain.ErrModifierNotFound, id)
	}
	return *m, nil
}

// RemoveModifier deletes a modifier and detaches it from every item
func (w *World) RemoveModifier(id modifier.ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.modifiers[id]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrModifierNotFound, id)
	}
	delete(w.modifiers, id)
	for _, it := range w.items {
		it.DetachModifier(id)
	}
	w.revision++
	return nil
}

// Attach appends a modifier to the named item's list
func (w *World) Attach(name string, id modifier.ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, ok := w.items[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	if _, ok := w.modifiers[id]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrModifierNotFound, id)
	}
	it.AttachModifier(id)
	w.revision++
	return nil
}

// Detach removes a modifier from the named item's list
func (w *World) Detach(name string, id modifier.ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, ok := w.items[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	if !it.DetachModifier(id) {
		return fmt.Errorf("%w: %d not attached to %s", domain.ErrModifierNotFound, id, name)
	}
	w.revision++
	return nil
}

// modifiersFor resolves the item's attached modifiers for one target,
// keeping attach order. Caller holds the lock.
func (w *World) modifiersFor(it *item.Item, target modifier.Target) []*modifier.Modifier {
	var out []*modifier.Modifier
	for _, id := range it.Modifiers() {
		if m, ok := w.modifiers[id]; ok && m.Target == target {
			out = append(out, m)
		}
	}
	return out
}
