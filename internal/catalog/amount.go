package catalog

import (
	"bytes"
	"fmt"
	"math/big"
)

// Amount is a whole-number price that may be written either as a JSON
// number or as a decimal string, so prices beyond int64 stay exact.
type Amount struct {
	big.Int
}

// NewAmount wraps v
func NewAmount(v int64) *Amount {
	a := &Amount{}
	a.SetInt64(v)
	return a
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	text := bytes.Trim(data, `"`)
	if _, ok := a.SetString(string(text), 10); !ok {
		return fmt.Errorf("invalid amount %s", data)
	}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
