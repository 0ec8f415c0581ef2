package economy

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/metrics"
	"github.com/osse101/Clicker_Go/internal/modifier"
	"github.com/osse101/Clicker_Go/internal/world"
)

// Test fixtures

// farm prices by level: 100, 150, 225, 337, 506, ...
func newTestWorld(t *testing.T, opts ...world.ItemOption) *world.World {
	t.Helper()
	w := world.New()
	base := []world.ItemOption{
		world.WithBasePrice(big.NewInt(100)),
		world.WithPriceMultiplier(1.5),
	}
	require.NoError(t, w.AddItem("farm", append(base, opts...)...))
	return w
}

func newTestService(t *testing.T, w *world.World, balance int64, bus event.Bus) Service {
	t.Helper()
	svc, err := NewService(w, NewWallet(big.NewInt(balance)), bus, Config{SellPriceRatio: 0.5, QuoteCacheSize: 16})
	require.NoError(t, err)
	return svc
}

func levelOf(t *testing.T, w *world.World, name string) item.Level {
	t.Helper()
	var level item.Level
	require.NoError(t, w.View(name, func(it *item.Item) { level = it.ItemLevel() }))
	return level
}

func TestNewService_Validation(t *testing.T) {
	w := newTestWorld(t)

	_, err := NewService(w, NewWallet(nil), nil, Config{SellPriceRatio: 1.5})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	svc, err := NewService(w, NewWallet(nil), nil, Config{SellPriceRatio: 0})
	require.NoError(t, err, "zero cache size falls back to the default")
	assert.Equal(t, int64(0), svc.Balance(context.Background()).Int64())
}

func TestBuyItem(t *testing.T) {
	ctx := context.Background()

	t.Run("stops when funds run out", func(t *testing.T) {
		w := newTestWorld(t)
		svc := newTestService(t, w, 1000, nil)

		result, err := svc.BuyItem(ctx, "farm", 5)
		require.NoError(t, err)

		// 100 + 150 + 225 + 337; 506 is unaffordable
		assert.Equal(t, int64(4), result.Levels)
		assert.Equal(t, item.Level(0), result.FromLevel)
		assert.Equal(t, item.Level(4), result.ToLevel)
		assert.Equal(t, int64(812), result.Cost.Int64())
		assert.Equal(t, int64(188), result.Balance.Int64())
		assert.Equal(t, item.Level(4), levelOf(t, w, "farm"))
	})

	t.Run("insufficient funds for one level", func(t *testing.T) {
		w := newTestWorld(t)
		svc := newTestService(t, w, 50, nil)

		_, err := svc.BuyItem(ctx, "farm", 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, int64(50), svc.Balance(ctx).Int64())
		assert.Equal(t, item.Level(0), levelOf(t, w, "farm"))
	})

	t.Run("stops at max level", func(t *testing.T) {
		w := newTestWorld(t, world.WithMaxLevel(2))
		svc := newTestService(t, w, 1_000_000, nil)

		result, err := svc.BuyItem(ctx, "farm", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Levels)

		_, err = svc.BuyItem(ctx, "farm", 1)
		assert.ErrorIs(t, err, domain.ErrMaxLevelReached)
		assert.Equal(t, int64(1_000_000-250), svc.Balance(ctx).Int64())
	})

	t.Run("price out of range", func(t *testing.T) {
		w := world.New()
		require.NoError(t, w.AddItem("tower", world.WithPriceMultiplier(2), world.WithLevel(2_000_000)))
		svc := newTestService(t, w, 1, nil)

		_, err := svc.BuyItem(ctx, "tower", 1)
		assert.ErrorIs(t, err, domain.ErrPriceOutOfRange)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := newTestService(t, newTestWorld(t), 1000, nil)
		_, err := svc.BuyItem(ctx, "ghost", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("publishes purchase event", func(t *testing.T) {
		bus := new(MockBus)
		bus.On("Publish", mock.Anything, eventOfType(event.ItemBought)).Return(nil).Once()

		svc := newTestService(t, newTestWorld(t), 1000, bus)
		_, err := svc.BuyItem(ctx, "farm", 2)
		require.NoError(t, err)

		bus.AssertExpectations(t)
		evt := bus.Calls[0].Arguments.Get(1).(event.Event)
		payload := evt.Payload.(event.ItemBoughtPayloadV1)
		assert.Equal(t, "250", payload.Cost)
		assert.Equal(t, int64(2), payload.Levels)
	})

	t.Run("publish failure does not fail the purchase", func(t *testing.T) {
		bus := new(MockBus)
		bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

		svc := newTestService(t, newTestWorld(t), 1000, bus)
		_, err := svc.BuyItem(ctx, "farm", 1)
		assert.NoError(t, err)
	})
}

func TestQuantityValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestWorld(t, world.WithLevel(1)), 1000, nil)

	for _, qty := range []int64{0, -1, MaxTransactionQuantity + 1} {
		_, err := svc.BuyItem(ctx, "farm", qty)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "buy %d", qty)

		_, err = svc.SellItem(ctx, "farm", qty)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "sell %d", qty)
	}
}

func TestSellItem(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds half of each level price", func(t *testing.T) {
		w := newTestWorld(t, world.WithLevel(4))
		svc := newTestService(t, w, 0, nil)

		// 337 * 0.5
		result, err := svc.SellItem(ctx, "farm", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Levels)
		assert.Equal(t, int64(168), result.Refund.Int64())
		assert.Equal(t, item.Level(3), result.ToLevel)

		// 112 + 75 + 50, stopping at level 0
		result, err = svc.SellItem(ctx, "farm", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Levels)
		assert.Equal(t, int64(237), result.Refund.Int64())
		assert.Equal(t, int64(405), result.Balance.Int64())
		assert.Equal(t, item.Level(0), levelOf(t, w, "farm"))

		_, err = svc.SellItem(ctx, "farm", 1)
		assert.ErrorIs(t, err, domain.ErrNothingToSell)
	})

	t.Run("applies refund modifiers", func(t *testing.T) {
		w := newTestWorld(t, world.WithLevel(4))
		bonus, err := w.AddModifier(modifier.Modifier{Name: "Pawn", Target: modifier.TargetRefund, Type: modifier.TypeMultiplicative, Value: 0.1})
		require.NoError(t, err)
		require.NoError(t, w.Attach("farm", bonus))
		svc := newTestService(t, w, 0, nil)

		// 337 * 0.5 * 1.1 = 185.35
		result, err := svc.SellItem(ctx, "farm", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(185), result.Refund.Int64())
	})

	t.Run("publishes sale event", func(t *testing.T) {
		bus := new(MockBus)
		bus.On("Publish", mock.Anything, eventOfType(event.ItemSold)).Return(nil).Once()

		svc := newTestService(t, newTestWorld(t, world.WithLevel(1)), 0, bus)
		_, err := svc.SellItem(ctx, "farm", 1)
		require.NoError(t, err)
		bus.AssertExpectations(t)
	})
}

func TestBuyThenSellRoundTrip(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(t)
	svc, err := NewService(w, NewWallet(big.NewInt(1000)), nil, Config{SellPriceRatio: 1})
	require.NoError(t, err)

	_, err = svc.BuyItem(ctx, "farm", 3)
	require.NoError(t, err)
	_, err = svc.SellItem(ctx, "farm", 3)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), svc.Balance(ctx).Int64(), "a full-ratio sale returns exactly what was paid")
}

func TestGetQuote(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(t)
	svc := newTestService(t, w, 1000, nil)

	q, err := svc.GetQuote(ctx, "farm")
	require.NoError(t, err)
	assert.Equal(t, "farm", q.Item.Name)
	assert.Equal(t, int64(100), q.Price.Int64())
	assert.Nil(t, q.SellValue)

	_, err = svc.BuyItem(ctx, "farm", 1)
	require.NoError(t, err)

	q, err = svc.GetQuote(ctx, "farm")
	require.NoError(t, err)
	assert.Equal(t, int64(150), q.Price.Int64())
	assert.Equal(t, int64(50), q.SellValue.Int64())

	_, err = svc.GetQuote(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestGetQuote_Cache(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestWorld(t), 0, nil)

	hits := metrics.QuoteCacheLookups.WithLabelValues(metrics.ResultHit)
	before := testutil.ToFloat64(hits)

	first, err := svc.GetQuote(ctx, "farm")
	require.NoError(t, err)
	first.Price.SetInt64(1)

	second, err := svc.GetQuote(ctx, "farm")
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(hits))
	assert.Equal(t, int64(100), second.Price.Int64(), "cached quotes are copied out")

	_, err = svc.BuyItem(ctx, "farm", 1)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = svc.GetQuote(ctx, "farm")
	require.NoError(t, err)
	assert.Equal(t, before+2, testutil.ToFloat64(hits), "a rejected buy keeps the cached quote")
}

func TestGetQuote_MaxedAndOutOfRange(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(t, world.WithMaxLevel(1), world.WithLevel(1))
	require.NoError(t, w.AddItem("tower", world.WithPriceMultiplier(2), world.WithLevel(2_000_000)))
	svc := newTestService(t, w, 0, nil)

	q, err := svc.GetQuote(ctx, "farm")
	require.NoError(t, err)
	assert.Nil(t, q.Price)
	assert.False(t, q.PriceOutOfRange)
	assert.Equal(t, int64(50), q.SellValue.Int64())

	q, err = svc.GetQuote(ctx, "tower")
	require.NoError(t, err)
	assert.Nil(t, q.Price)
	assert.True(t, q.PriceOutOfRange)
	require.NotNil(t, q.SellValue)
	assert.Equal(t, int64(0), q.SellValue.Int64())
}

func TestSellItem_UnpriceableLevelRefundsNothing(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(t)
	require.NoError(t, w.AddItem("tower", world.WithPriceMultiplier(2), world.WithLevel(2_000_000)))
	svc := newTestService(t, w, 7, nil)

	result, err := svc.SellItem(ctx, "tower", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Levels)
	assert.Equal(t, int64(0), result.Refund.Int64())
	assert.Equal(t, int64(7), result.Balance.Int64())
	assert.Equal(t, item.Level(1_999_997), levelOf(t, w, "tower"))
}

func TestBuyItem_WideBasePriceChargesExactly(t *testing.T) {
	ctx := context.Background()
	base := new(big.Int).Lsh(big.NewInt(1), 300)
	base.Add(base, big.NewInt(1))

	w := world.New()
	require.NoError(t, w.AddItem("vault", world.WithBasePrice(base), world.WithPriceMultiplier(1)))
	funds := new(big.Int).Mul(base, big.NewInt(3))
	svc, err := NewService(w, NewWallet(funds), nil, Config{SellPriceRatio: 1})
	require.NoError(t, err)

	result, err := svc.BuyItem(ctx, "vault", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, new(big.Int).Mul(base, big.NewInt(2)).Cmp(result.Cost), "got %s", result.Cost)
	assert.Equal(t, 0, base.Cmp(result.Balance), "got %s", result.Balance)

	sale, err := svc.SellItem(ctx, "vault", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, base.Cmp(sale.Refund), "got %s", sale.Refund)
}

func TestGetPrices(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(t)
	require.NoError(t, w.AddItem("cursor", world.WithBasePrice(big.NewInt(15))))
	svc := newTestService(t, w, 0, nil)

	quotes, err := svc.GetPrices(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "farm", quotes[0].Item.Name)
	assert.Equal(t, "cursor", quotes[1].Item.Name)
	assert.Equal(t, int64(15), quotes[1].Price.Int64())
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestWorld(t), 10, nil)

	for _, bad := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := svc.Deposit(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}

	huge, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)
	balance, err := svc.Deposit(ctx, huge)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000000010", balance.String())
}

func TestSetItemLevel(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(t, world.WithMaxLevel(10))

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, eventOfType(event.ItemLevelSet)).Return(nil)
	svc := newTestService(t, w, 0, bus)

	view, err := svc.SetItemLevel(ctx, "farm", 7)
	require.NoError(t, err)
	assert.Equal(t, item.Level(7), view.Level)
	assert.Equal(t, int64(0), svc.Balance(ctx).Int64(), "level changes are free")

	_, err = svc.SetItemLevel(ctx, "farm", 11)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, item.Level(7), levelOf(t, w, "farm"))

	_, err = svc.SetItemLevel(ctx, "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	view, err = svc.MaximizeItem(ctx, "farm")
	require.NoError(t, err)
	assert.Equal(t, item.Level(10), view.Level)

	bus.AssertNumberOfCalls(t, "Publish", 2)
}
