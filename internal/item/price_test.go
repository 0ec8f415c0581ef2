package item

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Clicker_Go/internal/domain"
)

func newPriced(t *testing.T, base int64, multiplier float64) *Item {
	t.Helper()
	it := New(testWorld)
	require.NoError(t, it.SetBasePriceInt64(base))
	require.NoError(t, it.SetPriceMultiplier(multiplier))
	return it
}

func TestPriceAt(t *testing.T) {
	tests := []struct {
		name       string
		base       int64
		multiplier float64
		level      Level
		expected   int64
	}{
		{"level zero is base price", 100, 1.5, 0, 100},
		{"exact power", 100, 1.5, 2, 225},
		{"fraction is floored", 100, 1.5, 3, 337},
		{"doubling", 1, 2, 10, 1024},
		{"default multiplier level one", 1, 1.145, 1, 1},
		{"default multiplier level ten", 1, 1.145, 10, 3},
		{"flat multiplier", 7, 1, 1000, 7},
		{"zero multiplier first level", 7, 0, 0, 7},
		{"zero multiplier later levels", 7, 0, 3, 0},
		{"decaying multiplier", 1000, 0.5, 3, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := newPriced(t, tt.base, tt.multiplier)
			price, err := it.PriceAt(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price.Int64())
		})
	}
}

func TestPriceAt_BeyondInt64(t *testing.T) {
	it := newPriced(t, 1, 2)

	price, err := it.PriceAt(100)
	require.NoError(t, err)

	expected := new(big.Int).Lsh(big.NewInt(1), 100)
	assert.Equal(t, 0, expected.Cmp(price), "got %s", price)
}

// wideBase is wider than a 256-bit mantissa and odd, so any rounding shows
func wideBase() *big.Int {
	base := new(big.Int).Lsh(big.NewInt(1), 300)
	return base.Add(base, big.NewInt(1))
}

func TestPriceAt_WideBasePriceIsExact(t *testing.T) {
	it := New(testWorld)
	require.NoError(t, it.SetBasePrice(wideBase()))

	price, err := it.PriceAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, wideBase().Cmp(price), "level 0 must cost the base price, got %s", price)

	require.NoError(t, it.SetPriceMultiplier(1))
	price, err = it.PriceAt(5)
	require.NoError(t, err)
	assert.Equal(t, 0, wideBase().Cmp(price), "flat multiplier must keep the base price, got %s", price)

	require.NoError(t, it.SetPriceMultiplier(2))
	price, err = it.PriceAt(3)
	require.NoError(t, err)
	expected := new(big.Int).Lsh(wideBase(), 3)
	assert.Equal(t, 0, expected.Cmp(price), "got %s", price)

	total, err := it.CumulativePrice(0, 2)
	require.NoError(t, err)
	expected = new(big.Int).Mul(wideBase(), big.NewInt(3))
	assert.Equal(t, 0, expected.Cmp(total), "got %s", total)
}

func TestPriceAt_NegativeLevel(t *testing.T) {
	it := New(testWorld)
	_, err := it.PriceAt(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPriceAt_OutOfRange(t *testing.T) {
	it := newPriced(t, 1, 2)

	_, err := it.PriceAt(MaxPriceBits + 10)
	assert.ErrorIs(t, err, domain.ErrPriceOutOfRange)

	// Default cap with default multiplier
	_, err = New(testWorld).PriceAt(MaxLevel)
	assert.ErrorIs(t, err, domain.ErrPriceOutOfRange)
}

func TestPriceAt_NonDecreasing(t *testing.T) {
	for _, multiplier := range []float64{1, 1.01, 1.145, 1.5, 3} {
		it := newPriced(t, 10, multiplier)

		prev, err := it.PriceAt(0)
		require.NoError(t, err)
		for level := Level(1); level <= 200; level++ {
			current, err := it.PriceAt(level)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, current.Cmp(prev), 0,
				"multiplier %v: price fell at level %d", multiplier, level)
			prev = current
		}
	}
}

func TestNextPrice_FollowsLevel(t *testing.T) {
	it := newPriced(t, 100, 1.5)

	p0, err := it.NextPrice()
	require.NoError(t, err)
	assert.Equal(t, int64(100), p0.Int64())

	it.Upgrade()
	it.Upgrade()
	p2, err := it.NextPrice()
	require.NoError(t, err)
	assert.Equal(t, int64(225), p2.Int64())
}

func TestCumulativePrice(t *testing.T) {
	it := newPriced(t, 100, 1.5)

	total, err := it.CumulativePrice(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(100+150+225), total.Int64())

	zero, err := it.CumulativePrice(5, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Int64())

	_, err = it.CumulativePrice(0, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = it.CumulativePrice(MaxLevel, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func BenchmarkPriceAt(b *testing.B) {
	it := New(testWorld)
	for i := 0; i < b.N; i++ {
		_, _ = it.PriceAt(Level(i % 5000))
	}
}
