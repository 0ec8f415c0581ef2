package economy

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/Clicker_Go/internal/domain"
	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/logger"
	"github.com/osse101/Clicker_Go/internal/world"
)

// Quote is the current price state of one item. Price is nil when the item
// is maxed or its next price is out of range; SellValue is nil at level 0.
type Quote struct {
	Item            item.View
	Price           *big.Int
	SellValue       *big.Int
	PriceOutOfRange bool
}

// PurchaseResult contains the result of a buy operation
type PurchaseResult struct {
	Item      string
	Levels    int64
	FromLevel item.Level
	ToLevel   item.Level
	Cost      *big.Int
	Balance   *big.Int
}

// SaleResult contains the result of a sell operation
type SaleResult struct {
	Item      string
	Levels    int64
	FromLevel item.Level
	ToLevel   item.Level
	Refund    *big.Int
	Balance   *big.Int
}

// Service defines the interface for economy operations
type Service interface {
	GetPrices(ctx context.Context) ([]Quote, error)
	GetQuote(ctx context.Context, itemName string) (*Quote, error)
	BuyItem(ctx context.Context, itemName string, quantity int64) (*PurchaseResult, error)
	SellItem(ctx context.Context, itemName string, quantity int64) (*SaleResult, error)
	Balance(ctx context.Context) *big.Int
	Deposit(ctx context.Context, amount *big.Int) (*big.Int, error)
	SetItemLevel(ctx context.Context, itemName string, level item.Level) (*item.View, error)
	MaximizeItem(ctx context.Context, itemName string) (*item.View, error)
}

// Config tunes the service
type Config struct {
	// SellPriceRatio is the share of a level's price paid back when it is sold
	SellPriceRatio float64
	// QuoteCacheSize bounds the quote LRU
	QuoteCacheSize int
}

type service struct {
	world     *world.World
	wallet    *Wallet
	bus       event.Bus
	sellRatio float64
	quotes    *lru.Cache[string, Quote]
}

// NewService creates a new economy service over w. bus may be nil.
func NewService(w *world.World, wallet *Wallet, bus event.Bus, cfg Config) (Service, error) {
	if err := validateSellRatio(cfg.SellPriceRatio); err != nil {
		return nil, err
	}
	size := cfg.QuoteCacheSize
	if size <= 0 {
		size = DefaultQuoteCacheSize
	}
	quotes, err := lru.New[string, Quote](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote cache: %w", err)
	}
	return &service{
		world:     w,
		wallet:    wallet,
		bus:       bus,
		sellRatio: cfg.SellPriceRatio,
		quotes:    quotes,
	}, nil
}

func (s *service) Balance(ctx context.Context) *big.Int {
	return s.wallet.Balance()
}

func (s *service) Deposit(ctx context.Context, amount *big.Int) (*big.Int, error) {
	if err := validateDeposit(amount); err != nil {
		return nil, err
	}
	balance := s.wallet.Deposit(amount)
	logger.FromContext(ctx).Info(LogMsgDeposit, "amount", amount.String(), "balance", balance.String())
	return balance, nil
}

// publish hands evt to the bus. Subscribers only observe, so their
// failures are logged rather than failing the transaction.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// sellValue is what selling the level below level pays: that level's
// price scaled by the sell ratio, then the refund modifiers.
// A level whose price is out of range refunds nothing, so it can still be sold.
func (s *service) sellValue(it *item.Item, p world.Pricer, level item.Level) (*big.Int, error) {
	price, err := p.PriceAt(level - 1)
	if errors.Is(err, domain.ErrPriceOutOfRange) {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPriceFailedFmt, it.Name(), level-1, err)
	}
	value := new(big.Float).SetPrec(uint(price.BitLen()) + item.PricePrecision).SetInt(price)
	value.Mul(value, new(big.Float).SetFloat64(s.sellRatio))
	return p.Refund(value), nil
}
