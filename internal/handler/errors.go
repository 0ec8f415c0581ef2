package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingItemName       = "Missing item name"
	ErrMsgInvalidAmount         = "Amount must be a positive whole number"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceFailed   = "Service call failed"
	LogMsgPricesRetrieved = "Prices retrieved"
)

// Success messages for API responses
const (
	MsgLevelSetSuccess  = "Item level set"
	MsgMaximizedSuccess = "Item maximized"
	MsgDepositSuccess   = "Deposit accepted"
)
