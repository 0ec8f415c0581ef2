package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AmountValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"small", "1", false},
		{"beyond int64", "123456789012345678901234567890", false},
		{"zero", "0", true},
		{"negative", "-5", true},
		{"explicit plus", "+5", true},
		{"underscore", "1_000", true},
		{"space", "1 000", true},
		{"decimal", "1.5", true},
		{"hex", "0x10", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(DepositRequest{Amount: tt.amount})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_TradeQuantity(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(TradeRequest{}))
	assert.NoError(t, v.ValidateStruct(TradeRequest{Quantity: 10000}))
	assert.Error(t, v.ValidateStruct(TradeRequest{Quantity: 10001}))
	assert.Error(t, v.ValidateStruct(TradeRequest{Quantity: -1}))
}

func TestValidator_SetLevelRequiresLevel(t *testing.T) {
	v := GetValidator()
	zero := int64(0)
	negative := int64(-1)

	assert.Error(t, v.ValidateStruct(SetLevelRequest{}))
	assert.NoError(t, v.ValidateStruct(SetLevelRequest{Level: &zero}))
	assert.Error(t, v.ValidateStruct(SetLevelRequest{Level: &negative}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(DepositRequest{Amount: "abc"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"amount": ErrMsgInvalidAmount}, FormatValidationError(err))

	err = v.ValidateStruct(TradeRequest{Quantity: 20000})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"quantity": "Must be at most 10000"}, FormatValidationError(err))

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}

func TestParseAmount_Value(t *testing.T) {
	n, ok := parseAmount("42")
	require.True(t, ok)
	assert.Equal(t, int64(42), n.Int64())

	_, ok = parseAmount("0")
	assert.False(t, ok)
}
