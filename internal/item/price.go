package item

import (
	"fmt"
	"math"
	"math/big"

	"github.com/osse101/Clicker_Go/internal/domain"
)

// PriceAt calculates the price of buying the level after `level`:
//
//	price = floor(basePrice * priceMultiplier^level)
//
// Modifiers are not applied here; the world owns them.
func (it *Item) PriceAt(level Level) (*big.Int, error) {
	f, err := it.priceFloat(level)
	if err != nil {
		return nil, err
	}
	out, _ := f.Int(nil)
	return out, nil
}

// NextPrice is PriceAt for the current level
func (it *Item) NextPrice() (*big.Int, error) {
	return it.PriceAt(it.level)
}

// PriceFloat is PriceAt before quantization, for callers that apply
// further scaling (modifiers) before rounding.
func (it *Item) PriceFloat(level Level) (*big.Float, error) {
	return it.priceFloat(level)
}

// CumulativePrice sums PriceAt over `count` consecutive levels starting
// at `from`. It does not consult the level cap.
func (it *Item) CumulativePrice(from Level, count int64) (*big.Int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeCount)
	}
	if from > math.MaxInt64-count {
		return nil, fmt.Errorf(ErrFmtLevelRangeOverflow, domain.ErrInvalidArgument, from, count)
	}

	total := new(big.Int)
	for i := int64(0); i < count; i++ {
		p, err := it.PriceAt(from + i)
		if err != nil {
			return nil, err
		}
		total.Add(total, p)
	}
	return total, nil
}

func (it *Item) priceFloat(level Level) (*big.Float, error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: %s, got %d", domain.ErrInvalidArgument, ErrMsgNegativeLevel, level)
	}

	// Reject before doing the work when the result cannot fit
	if it.priceMultiplier > 1 {
		estimate := float64(level)*math.Log2(it.priceMultiplier) + float64(it.basePrice.BitLen())
		if estimate > MaxPriceBits+1 {
			return nil, fmt.Errorf(ErrFmtPriceTooLarge, domain.ErrPriceOutOfRange, level, MaxPriceBits)
		}
	}

	// Wide enough to hold the base price exactly plus PricePrecision bits of scale
	prec := uint(it.basePrice.BitLen()) + PricePrecision
	scale := pow(it.priceMultiplier, level, prec)
	result := new(big.Float).SetPrec(prec).SetInt(it.basePrice)
	result.Mul(result, scale)

	if result.MantExp(nil) > MaxPriceBits {
		return nil, fmt.Errorf(ErrFmtPriceTooLarge, domain.ErrPriceOutOfRange, level, MaxPriceBits)
	}
	return result, nil
}

// pow computes base^exp by repeated squaring at the given precision
func pow(base float64, exp Level, prec uint) *big.Float {
	result := new(big.Float).SetPrec(prec).SetInt64(1)
	b := new(big.Float).SetPrec(prec).SetFloat64(base)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, b)
		}
		exp >>= 1
		if exp > 0 {
			b.Mul(b, b)
		}
	}
	return result
}
