// common/money_test.go
package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("plain integer", func(t *testing.T) {
		amount, err := ParseAmount("500")
		assert.NoError(t, err)
		assert.Equal(t, "500.00", amount.StringFixed(2))
	})

	t.Run("decimal places survive exactly", func(t *testing.T) {
		amount, err := ParseAmount("123.45")
		assert.NoError(t, err)
		assert.True(t, amount.Equal(decimal.RequireFromString("123.45")))
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		amount, err := ParseAmount("  42.50 ")
		assert.NoError(t, err)
		assert.Equal(t, "42.50", amount.StringFixed(2))
	})

	t.Run("negative amounts parse", func(t *testing.T) {
		amount, err := ParseAmount("-10")
		assert.NoError(t, err)
		assert.True(t, amount.IsNegative())
	})

	t.Run("malformed input is a validation error", func(t *testing.T) {
		_, err := ParseAmount("five hundred")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Amount", validationErr.Field)
	})

	t.Run("empty input is a validation error", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.Error(t, err)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.50", FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "99.99", FormatAmount(decimal.RequireFromString("99.994")))
}
