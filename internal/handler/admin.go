package handler

import (
	"net/http"

	"github.com/osse101/Clicker_Go/internal/economy"
	"github.com/osse101/Clicker_Go/internal/logger"
)

// HandleSetItemLevel moves an item to the requested level for free
// @Summary Set item level
// @Description Moves an item to any level up to its cap without charging the wallet
// @Tags admin
// @Accept json
// @Produce json
// @Param name path string true "Item name"
// @Param request body SetLevelRequest true "Target level"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/items/{name}/level [put]
// @Security ApiKeyAuth
func HandleSetItemLevel(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := itemName(w, r)
		if !ok {
			return
		}

		var req SetLevelRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set item level", false); err != nil {
			return
		}

		view, err := svc.SetItemLevel(r.Context(), name, *req.Level)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceFailed, "op", "SetItemLevel", "item", name, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgLevelSetSuccess, Data: view})
	}
}

// HandleMaximizeItem moves an item to its level cap for free
// @Summary Maximize item
// @Description Moves an item to its level cap without charging the wallet
// @Tags admin
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/items/{name}/maximize [post]
// @Security ApiKeyAuth
func HandleMaximizeItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := itemName(w, r)
		if !ok {
			return
		}

		view, err := svc.MaximizeItem(r.Context(), name)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceFailed, "op", "MaximizeItem", "item", name, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgMaximizedSuccess, Data: view})
	}
}
