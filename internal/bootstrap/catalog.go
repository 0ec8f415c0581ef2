package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/osse101/Clicker_Go/internal/catalog"
	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/logger"
	"github.com/osse101/Clicker_Go/internal/world"
)

// ErrCatalogNotLoaded is reported by the readiness check before startup completes
var ErrCatalogNotLoaded = errors.New(ErrMsgCatalogNotLoaded)

// CatalogState tracks whether the world has been populated.
// It backs the readiness check.
type CatalogState struct {
	loaded atomic.Bool
}

// CheckHealth fails until a catalog has been applied
func (s *CatalogState) CheckHealth(context.Context) error {
	if !s.loaded.Load() {
		return ErrCatalogNotLoaded
	}
	return nil
}

// LoadCatalog loads the catalog at path, applies it to w and announces it on bus.
// A failed announcement is logged; the world is already populated by then.
func LoadCatalog(ctx context.Context, path string, w *world.World, bus event.Bus, state *CatalogState) (*catalog.ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoadingCatalog, "path", path)

	loader := catalog.NewLoader()

	config, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	result, err := loader.Apply(ctx, config, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplyCatalog, err)
	}

	if state != nil {
		state.loaded.Store(true)
	}

	evt := event.NewCatalogLoadedEvent(string(w.ID()), path,
		result.ItemsAdded, result.ModifiersAdded, result.Attachments)
	if err := bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgCatalogEventFailed, "error", err)
	}

	log.Info(LogMsgCatalogLoaded,
		"version", config.Version,
		"items", result.ItemsAdded,
		"modifiers", result.ModifiersAdded)

	return result, nil
}
