package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types published by the economy and catalog
const (
	ItemBought    Type = "item.bought"
	ItemSold      Type = "item.sold"
	ItemLevelSet  Type = "item.level_set"
	CatalogLoaded Type = "catalog.loaded"
)

// ItemBoughtPayloadV1 is the typed payload for purchase events.
// Cost is a base-10 integer string since prices are unbounded.
type ItemBoughtPayloadV1 struct {
	WorldID   string `json:"world_id"`
	Item      string `json:"item"`
	Levels    int64  `json:"levels"`
	FromLevel int64  `json:"from_level"`
	ToLevel   int64  `json:"to_level"`
	Cost      string `json:"cost"`
	Timestamp int64  `json:"timestamp"`
}

// ItemSoldPayloadV1 is the typed payload for sale events
type ItemSoldPayloadV1 struct {
	WorldID   string `json:"world_id"`
	Item      string `json:"item"`
	Levels    int64  `json:"levels"`
	FromLevel int64  `json:"from_level"`
	ToLevel   int64  `json:"to_level"`
	Refund    string `json:"refund"`
	Timestamp int64  `json:"timestamp"`
}

// ItemLevelSetPayloadV1 is the typed payload for administrative level changes
type ItemLevelSetPayloadV1 struct {
	WorldID  string `json:"world_id"`
	Item     string `json:"item"`
	OldLevel int64  `json:"old_level"`
	NewLevel int64  `json:"new_level"`
	Source   string `json:"source"`
}

// CatalogLoadedPayloadV1 is the typed payload for catalog load events
type CatalogLoadedPayloadV1 struct {
	WorldID     string `json:"world_id"`
	Path        string `json:"path"`
	Items       int    `json:"items"`
	Modifiers   int    `json:"modifiers"`
	Attachments int    `json:"attachments"`
}

// Type-safe event constructors

// NewItemBoughtEvent creates a new purchase event
func NewItemBoughtEvent(worldID, itemName string, from, to int64, cost string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemBought,
		Payload: ItemBoughtPayloadV1{
			WorldID:   worldID,
			Item:      itemName,
			Levels:    to - from,
			FromLevel: from,
			ToLevel:   to,
			Cost:      cost,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates a new sale event
func NewItemSoldEvent(worldID, itemName string, from, to int64, refund string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: ItemSoldPayloadV1{
			WorldID:   worldID,
			Item:      itemName,
			Levels:    from - to,
			FromLevel: from,
			ToLevel:   to,
			Refund:    refund,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemLevelSetEvent creates a new level change event. source names the
// operation that changed it ("set" or "maximize").
func NewItemLevelSetEvent(worldID, itemName string, oldLevel, newLevel int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemLevelSet,
		Payload: ItemLevelSetPayloadV1{
			WorldID:  worldID,
			Item:     itemName,
			OldLevel: oldLevel,
			NewLevel: newLevel,
			Source:   source,
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewCatalogLoadedEvent creates a new catalog load event
func NewCatalogLoadedEvent(worldID, path string, items, modifiers, attachments int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogLoaded,
		Payload: CatalogLoadedPayloadV1{
			WorldID:     worldID,
			Path:        path,
			Items:       items,
			Modifiers:   modifiers,
			Attachments: attachments,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; their errors are joined into one.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
