package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Clicker_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing the header so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err to a status and user message and writes it
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidArgument     = "Invalid request. Please check your inputs."
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgMaxLevelError       = "Item is already at its max level"
	ErrMsgNothingToSellError  = "Item has no levels to sell"
	ErrMsgPriceTooLargeError  = "Price is too large to compute"
)

// mapServiceErrorToUserMessage converts domain errors into HTTP status
// codes and messages that do not leak internal detail
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrMsgInvalidArgument
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrMaxLevelReached):
		return http.StatusConflict, ErrMsgMaxLevelError
	case errors.Is(err, domain.ErrNothingToSell):
		return http.StatusConflict, ErrMsgNothingToSellError
	case errors.Is(err, domain.ErrPriceOutOfRange):
		return http.StatusUnprocessableEntity, ErrMsgPriceTooLargeError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
