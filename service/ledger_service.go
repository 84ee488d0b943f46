package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound   = errors.New("wrong account number")
	ErrRecipientNotFound = errors.New("the recipient account does not exist")
	ErrAccountExists     = errors.New("this account already exists")
	ErrMissingName       = errors.New("no name was entered")
)

// InsufficientFundsError reports a withdrawal or transfer that would drive
// the balance negative. It carries the untouched current balance so the
// caller can show it.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance to complete this transaction: balance is %s", e.Balance.StringFixed(2))
}

// LedgerService implements every balance mutation. Each operation resolves
// accounts through the directory, authenticates where a PIN is required,
// applies the mutation in memory, and only then rewrites durable storage.
// Guard order within each operation is load-bearing: it decides which
// outcome a caller sees first.
type LedgerService struct {
	directory *repository.AccountDirectory
	store     repository.IAccountStore
	auth      *Authenticator
}

func NewLedgerService(directory *repository.AccountDirectory, store repository.IAccountStore, auth *Authenticator) *LedgerService {
	return &LedgerService{
		directory: directory,
		store:     store,
		auth:      auth,
	}
}

func (s *LedgerService) persist(ctx context.Context) error {
	if err := s.store.SaveAll(ctx, s.directory.All()); err != nil {
		return fmt.Errorf("could not persist ledger: %w", err)
	}
	return nil
}

func newReceipt(accountNumber string, amount, balance decimal.Decimal) *model.Receipt {
	return &model.Receipt{
		Reference:     uuid.New().String(),
		AccountNumber: accountNumber,
		Amount:        amount,
		Balance:       balance,
		CreatedAt:     time.Now(),
	}
}

// Deposit credits rawAmount to the account. Non-positive amounts are
// accepted: the source system never guarded against them, and that laxity
// is kept.
func (s *LedgerService) Deposit(ctx context.Context, accountNumber, pin, rawAmount string, prompt PINPrompt) (*model.Receipt, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         rawAmount,
	})
	log.Info("Starting deposit")

	account := s.directory.FindByNumber(accountNumber)
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.auth.Verify(account, pin, prompt); err != nil {
		return nil, err
	}
	amount, err := common.ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	account.Balance = account.Balance.Add(amount)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	log.WithField("balance", account.Balance.StringFixed(2)).Info("Deposit completed")
	return newReceipt(account.AccountNumber, amount, account.Balance), nil
}

// Withdraw debits rawAmount from the account, refusing to drive the
// balance negative.
func (s *LedgerService) Withdraw(ctx context.Context, accountNumber, pin, rawAmount string, prompt PINPrompt) (*model.Receipt, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         rawAmount,
	})
	log.Info("Starting withdrawal")

	account := s.directory.FindByNumber(accountNumber)
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.auth.Verify(account, pin, prompt); err != nil {
		return nil, err
	}
	amount, err := common.ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	if account.Balance.LessThan(amount) {
		return nil, &InsufficientFundsError{Balance: account.Balance}
	}

	account.Balance = account.Balance.Sub(amount)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	log.WithField("balance", account.Balance.StringFixed(2)).Info("Withdrawal completed")
	return newReceipt(account.AccountNumber, amount, account.Balance), nil
}

// Transfer moves rawAmount from the sender to the recipient. The recipient
// is only credited once every guard has passed; both balances change in one
// in-memory step before a single persist.
func (s *LedgerService) Transfer(ctx context.Context, toAccountNumber, fromAccountNumber, pin, rawAmount string, prompt PINPrompt) (*model.Receipt, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account": fromAccountNumber,
		"to_account":   toAccountNumber,
		"amount":       rawAmount,
	})
	log.Info("Starting transfer")

	sender := s.directory.FindByNumber(fromAccountNumber)
	if sender == nil {
		return nil, ErrAccountNotFound
	}
	recipient := s.directory.FindByNumber(toAccountNumber)
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}
	if err := s.auth.Verify(sender, pin, prompt); err != nil {
		return nil, err
	}
	amount, err := common.ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	if sender.Balance.LessThan(amount) {
		return nil, &InsufficientFundsError{Balance: sender.Balance}
	}

	sender.Balance = sender.Balance.Sub(amount)
	recipient.Balance = recipient.Balance.Add(amount)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	log.WithField("balance", sender.Balance.StringFixed(2)).Info("Transfer completed")
	return newReceipt(sender.AccountNumber, amount, sender.Balance), nil
}

// CreateAccount opens a new account. The existence and empty-name checks
// are recoverable outcomes; the confirmation and deposit checks are hard
// validation failures that must interrupt the caller.
func (s *LedgerService) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Receipt, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": req.AccountNumber,
		"name":           req.Name,
	})
	log.Info("Starting account creation")

	if s.directory.FindByNumber(req.AccountNumber) != nil {
		return nil, ErrAccountExists
	}
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}
	deposit, err := common.ParseAmount(req.InitialDeposit)
	if err != nil {
		return nil, err
	}
	if deposit.IsNegative() {
		return nil, common.NewValidationError("InitialDeposit", "the initial deposit must not be negative")
	}

	account := &model.Account{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		PIN:           req.PIN,
		Balance:       deposit,
	}
	s.directory.Add(account)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	log.WithField("balance", account.Balance.StringFixed(2)).Info("Account created")
	return newReceipt(account.AccountNumber, deposit, account.Balance), nil
}
