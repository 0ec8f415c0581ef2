package item

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/modifier"
)

const testWorld WorldID = "test-world"

func TestNew_Defaults(t *testing.T) {
	it := New(testWorld)

	assert.Equal(t, testWorld, it.World())
	assert.Equal(t, DefaultName, it.Name())
	assert.Equal(t, DefaultDescription, it.Description())
	assert.Equal(t, int64(1), it.BasePrice().Int64())
	assert.Equal(t, 1.145, it.PriceMultiplier())
	assert.Equal(t, Level(0), it.ItemLevel())
	assert.Equal(t, Level(math.MaxInt64), it.MaxItemLevel())
	assert.Empty(t, it.Modifiers())
}

func TestNewNamed(t *testing.T) {
	it, err := NewNamed(testWorld, "Sword")
	require.NoError(t, err)
	assert.Equal(t, "Sword", it.Name())

	_, err = NewNamed(testWorld, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNew_NilWorldAllowed(t *testing.T) {
	it := New("")
	assert.Equal(t, WorldID(""), it.World())
}

func TestSetName(t *testing.T) {
	it := New(testWorld)

	err := it.SetName("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, DefaultName, it.Name(), "failed set must not mutate")

	require.NoError(t, it.SetName("Sword"))
	assert.Equal(t, "Sword", it.Name())
}

func TestSetDescription_AcceptsAnything(t *testing.T) {
	it := New(testWorld)

	it.SetDescription("")
	assert.Equal(t, "", it.Description())

	it.SetDescription("Sharp.")
	assert.Equal(t, "Sharp.", it.Description())
}

func TestSetBasePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   *big.Int
		wantErr bool
	}{
		// CASE 1: Best Case
		{"five", big.NewInt(5), false},
		{"huge", new(big.Int).Lsh(big.NewInt(1), 200), false},

		// CASE 2: Invalid Case
		{"nil", nil, true},
		{"zero", big.NewInt(0), true},
		{"negative", big.NewInt(-3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New(testWorld)
			err := it.SetBasePrice(tt.price)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				assert.Equal(t, int64(1), it.BasePrice().Int64(), "failed set must not mutate")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.price.Cmp(it.BasePrice()))
		})
	}
}

func TestSetBasePrice_CopiesInput(t *testing.T) {
	it := New(testWorld)
	price := big.NewInt(5)
	require.NoError(t, it.SetBasePrice(price))

	price.SetInt64(999)
	assert.Equal(t, int64(5), it.BasePrice().Int64())

	got := it.BasePrice()
	got.SetInt64(42)
	assert.Equal(t, int64(5), it.BasePrice().Int64())
}

func TestSetBasePriceInt64(t *testing.T) {
	it := New(testWorld)

	require.NoError(t, it.SetBasePriceInt64(5))
	assert.Equal(t, int64(5), it.BasePrice().Int64())

	assert.ErrorIs(t, it.SetBasePriceInt64(0), domain.ErrInvalidArgument)
	assert.ErrorIs(t, it.SetBasePriceInt64(-1), domain.ErrInvalidArgument)
	assert.Equal(t, int64(5), it.BasePrice().Int64())
}

func TestSetPriceMultiplier(t *testing.T) {
	it := New(testWorld)

	require.NoError(t, it.SetPriceMultiplier(2))
	assert.Equal(t, 2.0, it.PriceMultiplier())

	require.NoError(t, it.SetPriceMultiplier(0))
	assert.Equal(t, 0.0, it.PriceMultiplier())

	for _, bad := range []float64{-0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, it.SetPriceMultiplier(bad), domain.ErrInvalidArgument)
	}
	assert.Equal(t, 0.0, it.PriceMultiplier())
}

func TestSetMaxItemLevel(t *testing.T) {
	it := New(testWorld)

	assert.ErrorIs(t, it.SetMaxItemLevel(0), domain.ErrInvalidArgument)
	assert.ErrorIs(t, it.SetMaxItemLevel(-3), domain.ErrInvalidArgument)
	assert.Equal(t, MaxLevel, it.MaxItemLevel())

	require.NoError(t, it.SetMaxItemLevel(10))
	assert.NoError(t, it.SetItemLevel(10))
	assert.ErrorIs(t, it.SetItemLevel(11), domain.ErrInvalidArgument)
	assert.Equal(t, Level(10), it.ItemLevel())
}

func TestSetMaxItemLevel_ClampsCurrentLevel(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetItemLevel(20))

	require.NoError(t, it.SetMaxItemLevel(5))
	assert.Equal(t, Level(5), it.ItemLevel())

	require.NoError(t, it.SetMaxItemLevel(50))
	assert.Equal(t, Level(5), it.ItemLevel(), "raising the cap leaves the level alone")
}

func TestSetItemLevel(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetMaxItemLevel(10))

	assert.ErrorIs(t, it.SetItemLevel(-1), domain.ErrInvalidArgument)
	assert.ErrorIs(t, it.SetItemLevel(11), domain.ErrInvalidArgument)
	assert.Equal(t, Level(0), it.ItemLevel())

	require.NoError(t, it.SetItemLevel(10))
	assert.Equal(t, Level(10), it.ItemLevel())

	require.NoError(t, it.SetItemLevel(3))
	assert.Equal(t, Level(3), it.ItemLevel())
}

func TestUpgrade_CountsUpToCap(t *testing.T) {
	const maxLevel = 20

	for n := 0; n <= maxLevel; n++ {
		it := New(testWorld)
		require.NoError(t, it.SetMaxItemLevel(maxLevel))

		for i := 0; i < n; i++ {
			assert.True(t, it.Upgrade())
		}
		assert.Equal(t, Level(n), it.ItemLevel())
	}
}

func TestUpgrade_StopsAtCap(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetMaxItemLevel(7))

	for i := 0; i < 7+5; i++ {
		it.Upgrade()
	}
	assert.Equal(t, Level(7), it.ItemLevel())
	assert.True(t, it.IsMaxed())
	assert.False(t, it.Upgrade())
}

func TestUpgrade_DefaultCapDoesNotOverflow(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetItemLevel(math.MaxInt64))

	assert.False(t, it.Upgrade())
	assert.Equal(t, Level(math.MaxInt64), it.ItemLevel())
}

func TestDowngrade(t *testing.T) {
	it := New(testWorld)

	assert.False(t, it.Downgrade())
	assert.Equal(t, Level(0), it.ItemLevel())

	require.NoError(t, it.SetItemLevel(2))
	assert.True(t, it.Downgrade())
	assert.True(t, it.Downgrade())
	assert.False(t, it.Downgrade())
	assert.Equal(t, Level(0), it.ItemLevel())
}

func TestMaximize(t *testing.T) {
	for _, start := range []Level{0, 3, 9, 10} {
		it := New(testWorld)
		require.NoError(t, it.SetMaxItemLevel(10))
		require.NoError(t, it.SetItemLevel(start))

		it.Maximize()
		assert.Equal(t, it.MaxItemLevel(), it.ItemLevel())
	}
}

func TestMaximize_ThenDowngradeLeavesCap(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetMaxItemLevel(3))
	it.Maximize()

	assert.True(t, it.Downgrade())
	assert.Equal(t, Level(2), it.ItemLevel())
}

func TestScenario_FiftyOneUpgradesOnFiftyCap(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetBasePriceInt64(1))
	require.NoError(t, it.SetPriceMultiplier(1.145))
	require.NoError(t, it.SetMaxItemLevel(50))

	assert.NotPanics(t, func() {
		for i := 0; i < 51; i++ {
			it.Upgrade()
		}
	})
	assert.Equal(t, Level(50), it.ItemLevel())
}

func TestModifierContainer(t *testing.T) {
	it := New(testWorld)

	it.AttachModifier(modifier.ID(3))
	it.AttachModifier(modifier.ID(1))
	it.AttachModifier(modifier.ID(2))
	it.AttachModifier(modifier.ID(1))

	assert.Equal(t, []modifier.ID{3, 1, 2}, it.Modifiers())
	assert.True(t, it.HasModifier(1))

	assert.True(t, it.DetachModifier(1))
	assert.False(t, it.DetachModifier(1))
	assert.Equal(t, []modifier.ID{3, 2}, it.Modifiers())

	ids := it.Modifiers()
	ids[0] = 99
	assert.Equal(t, []modifier.ID{3, 2}, it.Modifiers(), "returned slice must be a copy")
}

func TestSnapshot(t *testing.T) {
	it, err := NewNamed(testWorld, "Cursor")
	require.NoError(t, err)
	require.NoError(t, it.SetBasePriceInt64(15))
	require.NoError(t, it.SetMaxItemLevel(100))
	it.Upgrade()
	it.AttachModifier(4)

	v := it.Snapshot()
	assert.Equal(t, View{
		World:           testWorld,
		Name:            "Cursor",
		Description:     DefaultDescription,
		BasePrice:       "15",
		PriceMultiplier: DefaultPriceMultiplier,
		Level:           1,
		MaxLevel:        100,
		Modifiers:       []modifier.ID{4},
	}, v)
}
