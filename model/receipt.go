package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt records the outcome of a successful balance mutation.
// Balance is the account's balance after the mutation was applied.
type Receipt struct {
	Reference     string          `json:"reference"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}
