package metrics

import (
	"context"
	"math"
	"math/big"

	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemBought,
		event.ItemSold,
		event.ItemLevelSet,
		event.CatalogLoaded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemBought:
		payload, err := event.DecodePayload[event.ItemBoughtPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		ItemsBought.WithLabelValues(payload.Item).Add(float64(payload.Levels))
		addAmount(ctx, MoneySpent.Add, payload.Cost)

	case event.ItemSold:
		payload, err := event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		ItemsSold.WithLabelValues(payload.Item).Add(float64(payload.Levels))
		addAmount(ctx, MoneyEarned.Add, payload.Refund)

	case event.ItemLevelSet:
		payload, err := event.DecodePayload[event.ItemLevelSetPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		LevelChanges.WithLabelValues(payload.Item, payload.Source).Inc()

	case event.CatalogLoaded:
		payload, err := event.DecodePayload[event.CatalogLoadedPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		CatalogItems.Set(float64(payload.Items))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) decodeFailed(ctx context.Context, evt event.Event, err error) error {
	logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	return nil
}

// addAmount adds a decimal integer string to a float counter.
// Amounts past float64 range are skipped.
func addAmount(ctx context.Context, add func(float64), amount string) {
	n, ok := new(big.Int).SetString(amount, 10)
	if !ok || n.Sign() < 0 {
		logger.FromContext(ctx).Debug(LogMsgAmountUnparseable, "amount", amount)
		return
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	if f > 0 && !math.IsInf(f, 1) {
		add(f)
	}
}
