package economy

import (
	"fmt"
	"math/big"

	"github.com/osse101/Clicker_Go/internal/domain"
)

// validateQuantity validates the transaction quantity
func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidArgument)
	}
	if quantity > MaxTransactionQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, MaxTransactionQuantity, domain.ErrInvalidArgument)
	}
	return nil
}

func validateDeposit(amount *big.Int) error {
	if amount == nil {
		return fmt.Errorf(ErrMsgNilAmount, domain.ErrInvalidArgument)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf(ErrMsgInvalidDepositFmt, amount, domain.ErrInvalidArgument)
	}
	return nil
}

func validateSellRatio(ratio float64) error {
	if !(ratio >= 0 && ratio <= 1) {
		return fmt.Errorf(ErrMsgInvalidSellRatioFmt, ratio, domain.ErrInvalidArgument)
	}
	return nil
}
