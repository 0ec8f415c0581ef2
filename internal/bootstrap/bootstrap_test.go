package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/world"
)

const testCatalog = `
version: "1.0"
items:
  - name: cursor
    base_price: 15
  - name: grandma
    base_price: 100
modifiers:
  - name: Sale
    target: price
    type: multiplicative
    value: -0.5
    items: [cursor]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCatalog(t *testing.T) {
	bus := event.NewMemoryBus()
	var got []event.Event
	bus.Subscribe(event.CatalogLoaded, func(_ context.Context, evt event.Event) error {
		got = append(got, evt)
		return nil
	})

	w := world.New()
	state := &CatalogState{}
	require.ErrorIs(t, state.CheckHealth(context.Background()), ErrCatalogNotLoaded)

	result, err := LoadCatalog(context.Background(), writeCatalog(t, testCatalog), w, bus, state)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ItemsAdded)
	assert.Equal(t, 1, result.ModifiersAdded)
	assert.Equal(t, []string{"cursor", "grandma"}, w.Names())
	assert.NoError(t, state.CheckHealth(context.Background()))

	require.Len(t, got, 1)
	payload, err := event.DecodePayload[event.CatalogLoadedPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Items)
	assert.Equal(t, 1, payload.Attachments)
}

func TestLoadCatalog_Failures(t *testing.T) {
	bus := event.NewMemoryBus()

	t.Run("missing file", func(t *testing.T) {
		state := &CatalogState{}
		_, err := LoadCatalog(context.Background(), "/nonexistent/catalog.yaml", world.New(), bus, state)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
		assert.Error(t, state.CheckHealth(context.Background()))
	})

	t.Run("item already in world", func(t *testing.T) {
		w := world.New()
		require.NoError(t, w.AddItem("grandma"))

		_, err := LoadCatalog(context.Background(), writeCatalog(t, testCatalog), w, bus, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedApplyCatalog)
	})
}

func TestInitializeEventSystem(t *testing.T) {
	bus, err := InitializeEventSystem()
	require.NoError(t, err)
	require.NotNil(t, bus)

	evt := event.NewItemLevelSetEvent("w", "cursor", 0, 3, event.SourceSet)
	assert.NoError(t, bus.Publish(context.Background(), evt))
}

func TestGracefulShutdown_NilServer(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
