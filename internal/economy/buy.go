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

// BuyItem buys up to quantity levels of an item, one at a time at each
// level's price. It stops early at the level cap or when the wallet runs
// dry, and fails only if not even one level could be bought.
func (s *service) BuyItem(ctx context.Context, itemName string, quantity int64) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyItemCalled, "item", itemName, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	var result *PurchaseResult
	err := s.world.UpdatePriced(itemName, func(it *item.Item, p world.Pricer) error {
		from := it.ItemLevel()
		cost := new(big.Int)

		var bought int64
		for bought < quantity && !it.IsMaxed() {
			price, err := p.PriceAt(it.ItemLevel())
			if err != nil {
				if bought == 0 {
					return fmt.Errorf(ErrMsgPriceFailedFmt, it.Name(), it.ItemLevel(), err)
				}
				break
			}
			if !s.wallet.Withdraw(price) {
				if bought == 0 {
					return fmt.Errorf(ErrMsgInsufficientFundsFmt,
						it.Name(), it.ItemLevel()+1, price, s.wallet.Balance(), domain.ErrInsufficientFunds)
				}
				break
			}
			cost.Add(cost, price)
			it.Upgrade()
			bought++
		}

		if bought == 0 {
			return fmt.Errorf(ErrMsgMaxLevelFmt, it.Name(), it.MaxItemLevel(), domain.ErrMaxLevelReached)
		}

		result = &PurchaseResult{
			Item:      it.Name(),
			Levels:    bought,
			FromLevel: from,
			ToLevel:   it.ItemLevel(),
			Cost:      cost,
			Balance:   s.wallet.Balance(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Levels < quantity {
		log.Info(LogMsgAdjustedPurchaseQty, "item", itemName, "requested", quantity, "bought", result.Levels)
	}
	log.Info(LogMsgItemPurchased,
		"item", result.Item,
		"levels", result.Levels,
		"to_level", result.ToLevel,
		"cost", result.Cost.String())

	s.publish(ctx, event.NewItemBoughtEvent(string(s.world.ID()), result.Item, result.FromLevel, result.ToLevel, result.Cost.String()))
	return result, nil
}
