package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Clicker_Go/internal/logger"
)

// URLParamItem is the chi route parameter holding the item name
const URLParamItem = "name"

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 16

// DecodeAndValidateRequest decodes a JSON request body into req and
// validates it. An empty body is allowed when allowEmpty is set, leaving
// req at its defaults.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return err
		}
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// itemName reads the item name route parameter, writing a 400 if it is missing
func itemName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, URLParamItem)
	if name == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingItemName)
		return "", false
	}
	return name, true
}
