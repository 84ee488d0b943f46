package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var csvHeader = []string{"name", "account_number", "pin", "balance"}

// CSVAccountStore persists the ledger as a delimited table with a header
// row, one record per account. Every save rewrites the whole file; the
// rewrite goes through a temp file and a rename so readers never observe a
// half-written table.
type CSVAccountStore struct {
	path string
}

func NewCSVAccountStore(path string) *CSVAccountStore {
	return &CSVAccountStore{path: path}
}

func (s *CSVAccountStore) Load(ctx context.Context) ([]model.Account, error) {
	log := logger.Log.WithField("path", s.path)
	log.Info("Loading accounts from csv store")

	file, err := os.Open(s.path)
	if err != nil {
		log.WithError(err).Error("Failed to open csv store")
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.WithError(err).Error("Failed to read csv store")
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row in %s", common.ErrStorageUnavailable, s.path)
	}

	accounts := make([]model.Account, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("%w: malformed record %q", common.ErrStorageUnavailable, row)
		}
		balance, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad balance for account %s: %v", common.ErrStorageUnavailable, row[1], err)
		}
		accounts = append(accounts, model.Account{
			Name:          row[0],
			AccountNumber: row[1],
			PIN:           row[2],
			Balance:       balance,
		})
	}

	log.WithField("accounts", len(accounts)).Info("Loaded csv store")
	return accounts, nil
}

func (s *CSVAccountStore) SaveAll(ctx context.Context, accounts []model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"path":     s.path,
		"accounts": len(accounts),
	})

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".accounts-*.csv")
	if err != nil {
		log.WithError(err).Error("Failed to create temp file for csv store")
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := s.writeAll(tmp, accounts); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.WithError(err).Error("Failed to write csv store")
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		log.WithError(err).Error("Failed to replace csv store")
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	log.Debug("Persisted csv store")
	return nil
}

func (s *CSVAccountStore) writeAll(file *os.File, accounts []model.Account) error {
	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, account := range accounts {
		record := []string{account.Name, account.AccountNumber, account.PIN, account.Balance.String()}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Compile-time check: CSVAccountStore implements the store contract.
var _ IAccountStore = (*CSVAccountStore)(nil)
