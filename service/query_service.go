package service

import (
	"context"

	"go-bank-ledger/logger"
	"go-bank-ledger/repository"

	"github.com/shopspring/decimal"
)

// QueryService serves read-only balance inspection. It shares the
// directory and authenticator with the mutation path but never persists.
type QueryService struct {
	directory *repository.AccountDirectory
	auth      *Authenticator
}

func NewQueryService(directory *repository.AccountDirectory, auth *Authenticator) *QueryService {
	return &QueryService{
		directory: directory,
		auth:      auth,
	}
}

// CheckBalance returns the current balance after PIN verification.
func (s *QueryService) CheckBalance(ctx context.Context, accountNumber, pin string, prompt PINPrompt) (decimal.Decimal, error) {
	account := s.directory.FindByNumber(accountNumber)
	if account == nil {
		return decimal.Zero, ErrAccountNotFound
	}
	if err := s.auth.Verify(account, pin, prompt); err != nil {
		return decimal.Zero, err
	}

	logger.Log.WithField("account_number", accountNumber).Info("Balance inquiry served")
	return account.Balance, nil
}
