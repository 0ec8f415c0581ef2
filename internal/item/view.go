package item

import "github.com/osse101/Clicker_Go/internal/modifier"

// View is a read-only copy of an item's state for transport layers.
// Big integers are rendered as decimal strings.
type View struct {
	World           WorldID       `json:"world"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	BasePrice       string        `json:"base_price"`
	PriceMultiplier float64       `json:"price_multiplier"`
	Level           Level         `json:"level"`
	MaxLevel        Level         `json:"max_level"`
	Modifiers       []modifier.ID `json:"modifiers"`
}

// Snapshot copies the item state into a View
func (it *Item) Snapshot() View {
	return View{
		World:           it.world,
		Name:            it.name,
		Description:     it.description,
		BasePrice:       it.basePrice.String(),
		PriceMultiplier: it.priceMultiplier,
		Level:           it.level,
		MaxLevel:        it.maxLevel,
		Modifiers:       it.Modifiers(),
	}
}
