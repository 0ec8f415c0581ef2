package economy

import (
	"context"
	"fmt"
	"math/big"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/logger"
	"github.com/osse101/Clicker_Go/internal/world"
)

// SellItem sells up to quantity levels of an item, stopping at level 0.
// Each level pays its sell value into the wallet.
func (s *service) SellItem(ctx context.Context, itemName string, quantity int64) (*SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "item", itemName, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	var result *SaleResult
	err := s.world.UpdatePriced(itemName, func(it *item.Item, p world.Pricer) error {
		if it.ItemLevel() == 0 {
			return fmt.Errorf(ErrMsgNothingToSellFmt, it.Name(), domain.ErrNothingToSell)
		}

		from := it.ItemLevel()
		refund := new(big.Int)

		var sold int64
		for sold < quantity && it.ItemLevel() > 0 {
			value, err := s.sellValue(it, p, it.ItemLevel())
			if err != nil {
				if sold == 0 {
					return err
				}
				break
			}
			refund.Add(refund, value)
			it.Downgrade()
			sold++
		}

		result = &SaleResult{
			Item:      it.Name(),
			Levels:    sold,
			FromLevel: from,
			ToLevel:   it.ItemLevel(),
			Refund:    refund,
			Balance:   s.wallet.Deposit(refund),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemSold,
		"item", result.Item,
		"levels", result.Levels,
		"to_level", result.ToLevel,
		"refund", result.Refund.String())

	s.publish(ctx, event.NewItemSoldEvent(string(s.world.ID()), result.Item, result.FromLevel, result.ToLevel, result.Refund.String()))
	return result, nil
}
