package model

import "github.com/shopspring/decimal"

// Account is a holder's identity, credential, and balance record.
// The PIN is stored verbatim and compared by exact equality.
type Account struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	PIN           string          `json:"-"`
	Balance       decimal.Decimal `json:"balance"`
}
