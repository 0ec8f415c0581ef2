package handler

import (
	"net/http"

	"github.com/osse101/Clicker_Go/internal/economy"
	"github.com/osse101/Clicker_Go/internal/logger"
)

// HandleListItems returns a quote for every item in catalog order
// @Summary List items
// @Description Returns the current quote of every item in catalog order
// @Tags items
// @Produce json
// @Success 200 {array} QuoteResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		quotes, err := svc.GetPrices(r.Context())
		if err != nil {
			log.Error(LogMsgServiceFailed, "op", "GetPrices", "error", err)
			respondServiceError(w, err)
			return
		}

		resp := make([]QuoteResponse, 0, len(quotes))
		for _, q := range quotes {
			resp = append(resp, newQuoteResponse(q))
		}

		log.Debug(LogMsgPricesRetrieved, "count", len(resp))
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetItem returns the quote for one item
// @Summary Get item quote
// @Description Returns the level, next price and sell value of one item
// @Tags items
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/{name} [get]
func HandleGetItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := itemName(w, r)
		if !ok {
			return
		}

		q, err := svc.GetQuote(r.Context(), name)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceFailed, "op", "GetQuote", "item", name, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newQuoteResponse(*q))
	}
}

// HandleBuyItem buys levels of an item
// @Summary Buy item levels
// @Description Buys up to quantity levels, stopping early at the level cap or when funds run out
// @Tags items
// @Accept json
// @Produce json
// @Param name path string true "Item name"
// @Param request body TradeRequest false "Quantity, defaults to 1"
// @Success 200 {object} TradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/items/{name}/buy [post]
func HandleBuyItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := itemName(w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item", true); err != nil {
			return
		}

		result, err := svc.BuyItem(r.Context(), name, quantityOrOne(req.Quantity))
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceFailed, "op", "BuyItem", "item", name, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newPurchaseResponse(result))
	}
}

// HandleSellItem sells levels of an item
// @Summary Sell item levels
// @Description Sells up to quantity levels, stopping at level 0
// @Tags items
// @Accept json
// @Produce json
// @Param name path string true "Item name"
// @Param request body TradeRequest false "Quantity, defaults to 1"
// @Success 200 {object} TradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items/{name}/sell [post]
func HandleSellItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := itemName(w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item", true); err != nil {
			return
		}

		result, err := svc.SellItem(r.Context(), name, quantityOrOne(req.Quantity))
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceFailed, "op", "SellItem", "item", name, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newSaleResponse(result))
	}
}

func quantityOrOne(q int64) int64 {
	if q == 0 {
		return 1
	}
	return q
}
