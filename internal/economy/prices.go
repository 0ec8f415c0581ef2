package economy

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/logger"
	"github.com/osse101/Clicker_Go/internal/metrics"
	"github.com/osse101/Clicker_Go/internal/world"
)

// GetPrices quotes every item in catalog order
func (s *service) GetPrices(ctx context.Context) ([]Quote, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetPricesCalled)

	names := s.world.Names()
	quotes := make([]Quote, 0, len(names))
	for _, name := range names {
		q, err := s.GetQuote(ctx, name)
		if errors.Is(err, domain.ErrItemNotFound) {
			// removed since Names was read
			continue
		}
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}

// GetQuote prices one item. Quotes are cached per world revision, so any
// mutation of the world invalidates them.
func (s *service) GetQuote(ctx context.Context, itemName string) (*Quote, error) {
	var quote Quote
	err := s.world.ViewPriced(itemName, func(it *item.Item, p world.Pricer) error {
		key := fmt.Sprintf(quoteKeyFmt, it.Name(), it.ItemLevel(), p.Revision())
		if cached, ok := s.quotes.Get(key); ok {
			metrics.QuoteCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			quote = cached
			return nil
		}
		metrics.QuoteCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

		q, err := s.buildQuote(it, p)
		if err != nil {
			return err
		}
		s.quotes.Add(key, q)
		quote = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote.clone(), nil
}

func (s *service) buildQuote(it *item.Item, p world.Pricer) (Quote, error) {
	q := Quote{Item: it.Snapshot()}

	if !it.IsMaxed() {
		price, err := p.PriceAt(it.ItemLevel())
		switch {
		case errors.Is(err, domain.ErrPriceOutOfRange):
			q.PriceOutOfRange = true
		case err != nil:
			return Quote{}, fmt.Errorf(ErrMsgPriceFailedFmt, it.Name(), it.ItemLevel(), err)
		default:
			q.Price = price
		}
	}

	if it.ItemLevel() > 0 {
		value, err := s.sellValue(it, p, it.ItemLevel())
		if err != nil {
			return Quote{}, err
		}
		q.SellValue = value
	}
	return q, nil
}

// clone keeps cached big.Ints away from callers
func (q Quote) clone() *Quote {
	out := q
	out.Item.Modifiers = append(q.Item.Modifiers[:0:0], q.Item.Modifiers...)
	if q.Price != nil {
		out.Price = new(big.Int).Set(q.Price)
	}
	if q.SellValue != nil {
		out.SellValue = new(big.Int).Set(q.SellValue)
	}
	return &out
}
