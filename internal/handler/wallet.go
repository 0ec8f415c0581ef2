package handler

import (
	"net/http"

	"github.com/osse101/Clicker_Go/internal/economy"
	"github.com/osse101/Clicker_Go/internal/logger"
)

// HandleGetWallet returns the current balance
// @Summary Get wallet
// @Tags wallet
// @Produce json
// @Success 200 {object} WalletResponse
// @Router /api/v1/wallet [get]
func HandleGetWallet(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, WalletResponse{Balance: svc.Balance(r.Context()).String()})
	}
}

// HandleDeposit adds money to the wallet
// @Summary Deposit money
// @Description Adds a positive decimal amount to the wallet balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body DepositRequest true "Amount to deposit"
// @Success 200 {object} DataResponse{data=WalletResponse}
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/wallet/deposit [post]
func HandleDeposit(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit", false); err != nil {
			return
		}

		// validated by the amount tag
		amount, _ := parseAmount(req.Amount)

		balance, err := svc.Deposit(r.Context(), amount)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceFailed, "op", "Deposit", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgDepositSuccess,
			Data:    WalletResponse{Balance: balance.String()},
		})
	}
}
