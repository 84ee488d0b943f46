package service

import (
	"errors"

	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/sirupsen/logrus"
)

// ErrPINAttemptsExceeded is returned once every PIN attempt for an
// operation has been consumed without a match. No lock is recorded against
// the account; the next operation starts with a fresh attempt budget, even
// though the user-facing message claims a temporary block.
var ErrPINAttemptsExceeded = errors.New("maximum number of pin attempts reached")

// PINPrompt supplies a re-entered PIN after a failed attempt. Interactive
// callers block for input; non-interactive callers may pre-seed values or
// pass nil to forgo retries.
type PINPrompt func() string

// Authenticator verifies a supplied PIN against an account's stored PIN
// with a bounded number of attempts per call.
type Authenticator struct {
	maxAttempts int
}

// Two total attempts: the initial one plus a single re-entry.
const defaultMaxPINAttempts = 2

func NewAuthenticator() *Authenticator {
	return &Authenticator{maxAttempts: defaultMaxPINAttempts}
}

// Verify compares pin against the account's stored PIN by exact equality.
// A mismatch consumes one attempt; while attempts remain, a new PIN is
// obtained through prompt and compared again.
func (a *Authenticator) Verify(account *model.Account, pin string, prompt PINPrompt) error {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if account.PIN == pin {
			return nil
		}

		logger.Log.WithFields(logrus.Fields{
			"account_number": account.AccountNumber,
			"attempt":        attempt,
		}).Warn("PIN mismatch")

		if attempt == a.maxAttempts || prompt == nil {
			break
		}
		pin = prompt()
	}
	return ErrPINAttemptsExceeded
}
