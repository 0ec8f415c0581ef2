package economy

// ==================== Limits ====================

// MaxTransactionQuantity caps how many levels one buy or sell may move
const MaxTransactionQuantity = 10000

// DefaultQuoteCacheSize is used when the configured cache size is not positive
const DefaultQuoteCacheSize = 1024

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgInvalidDepositFmt     = "deposit must be positive, got %s: %w"
	ErrMsgInvalidSellRatioFmt   = "sell price ratio must be within [0, 1], got %v: %w"
	ErrMsgNilAmount             = "amount is nil: %w"
)

// Formatted error messages for transactions
const (
	ErrMsgInsufficientFundsFmt = "cannot afford %s level %d (cost: %s, balance: %s): %w"
	ErrMsgMaxLevelFmt          = "%s is at max level %d: %w"
	ErrMsgNothingToSellFmt     = "%s is at level 0: %w"
	ErrMsgPriceFailedFmt       = "failed to price %s at level %d: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgGetPricesCalled     = "GetPrices called"
	LogMsgBuyItemCalled       = "BuyItem called"
	LogMsgItemPurchased       = "Item purchased"
	LogMsgAdjustedPurchaseQty = "Adjusted purchase quantity"
	LogMsgSellItemCalled      = "SellItem called"
	LogMsgItemSold            = "Item sold"
	LogMsgDeposit             = "Wallet deposit"
	LogMsgLevelSet            = "Item level set"
	LogMsgPublishFailed       = "Failed to publish event"
)

// ==================== Cache ====================

// quoteKeyFmt keys cached quotes by item, level and world revision
const quoteKeyFmt = "%s:%d:%d"
