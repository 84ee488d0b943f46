package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

// PostgresAccountStore keeps the ledger in an accounts table while
// preserving the store contract: SaveAll replaces the persisted state
// wholesale inside a single transaction.
type PostgresAccountStore struct {
	DB *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{DB: db}
}

func (s *PostgresAccountStore) Load(ctx context.Context) ([]model.Account, error) {
	log := logger.Log
	log.Info("Executing query to load all accounts")

	query := `SELECT name, account_number, pin, balance FROM accounts ORDER BY account_number`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute load accounts query")
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.Name, &acc.AccountNumber, &acc.PIN, &acc.Balance); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	log.WithField("accounts", len(accounts)).Info("Loaded accounts table")
	return accounts, nil
}

func (s *PostgresAccountStore) SaveAll(ctx context.Context, accounts []model.Account) error {
	log := logger.Log.WithField("accounts", len(accounts))
	log.Info("Executing transactional rewrite of the accounts table")

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to begin accounts rewrite transaction")
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		log.WithError(err).Error("Failed to clear accounts table")
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	query := `INSERT INTO accounts (name, account_number, pin, balance) VALUES ($1, $2, $3, $4)`
	for _, account := range accounts {
		if _, err := tx.ExecContext(ctx, query, account.Name, account.AccountNumber, account.PIN, account.Balance); err != nil {
			log.WithError(err).Error("Failed to insert account row")
			return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit accounts rewrite")
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Compile-time check: PostgresAccountStore implements the store contract.
var _ IAccountStore = (*PostgresAccountStore)(nil)
