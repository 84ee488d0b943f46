// file: common/money.go

package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw user-supplied amount into a decimal value.
// Amounts are parsed exactly once at this boundary; all arithmetic happens
// on the decimal type. Malformed input is a hard validation failure.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, NewValidationError("Amount", fmt.Sprintf("%q is not a valid amount", raw))
	}
	return amount, nil
}

// FormatAmount renders a monetary value with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
