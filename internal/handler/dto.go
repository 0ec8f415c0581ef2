package handler

import (
	"math/big"

	"github.com/osse101/Clicker_Go/internal/economy"
	"github.com/osse101/Clicker_Go/internal/item"
)

// Request bodies

// TradeRequest is the body of buy and sell calls. Quantity defaults to 1.
type TradeRequest struct {
	Quantity int64 `json:"quantity" validate:"omitempty,min=1,max=10000"`
}

// SetLevelRequest is the body of the admin level call
type SetLevelRequest struct {
	Level *int64 `json:"level" validate:"required,min=0"`
}

// DepositRequest carries the amount as a decimal string so it is not limited to int64
type DepositRequest struct {
	Amount string `json:"amount" validate:"required,amount"`
}

// Responses. Money is always a decimal string.

// QuoteResponse is the price state of one item
type QuoteResponse struct {
	Item            item.View `json:"item"`
	Price           *string   `json:"price"`
	SellValue       *string   `json:"sell_value"`
	Maxed           bool      `json:"maxed"`
	PriceOutOfRange bool      `json:"price_out_of_range,omitempty"`
}

// TradeResponse is the outcome of a buy or sell
type TradeResponse struct {
	Item      string     `json:"item"`
	Levels    int64      `json:"levels"`
	FromLevel item.Level `json:"from_level"`
	ToLevel   item.Level `json:"to_level"`
	Cost      string     `json:"cost,omitempty"`
	Refund    string     `json:"refund,omitempty"`
	Balance   string     `json:"balance"`
}

// WalletResponse reports the balance
type WalletResponse struct {
	Balance string `json:"balance"`
}

func amountString(n *big.Int) *string {
	if n == nil {
		return nil
	}
	s := n.String()
	return &s
}

func newQuoteResponse(q economy.Quote) QuoteResponse {
	return QuoteResponse{
		Item:            q.Item,
		Price:           amountString(q.Price),
		SellValue:       amountString(q.SellValue),
		Maxed:           q.Item.Level >= q.Item.MaxLevel,
		PriceOutOfRange: q.PriceOutOfRange,
	}
}

func newPurchaseResponse(r *economy.PurchaseResult) TradeResponse {
	return TradeResponse{
		Item:      r.Item,
		Levels:    r.Levels,
		FromLevel: r.FromLevel,
		ToLevel:   r.ToLevel,
		Cost:      r.Cost.String(),
		Balance:   r.Balance.String(),
	}
}

func newSaleResponse(r *economy.SaleResult) TradeResponse {
	return TradeResponse{
		Item:      r.Item,
		Levels:    r.Levels,
		FromLevel: r.FromLevel,
		ToLevel:   r.ToLevel,
		Refund:    r.Refund.String(),
		Balance:   r.Balance.String(),
	}
}
