// repository/csv_store_test.go
package repository

import (
	"context"
	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func fixtureAccounts() []model.Account {
	return []model.Account{
		{Name: "John Doe", AccountNumber: "123456", PIN: "1234", Balance: decimal.RequireFromString("1000.00")},
		{Name: "Jane Smith", AccountNumber: "654321", PIN: "4321", Balance: decimal.RequireFromString("2000.00")},
	}
}

func TestCSVAccountStore_SaveAllAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "customers.csv")
	store := NewCSVAccountStore(path)

	err := store.SaveAll(ctx, fixtureAccounts())
	assert.NoError(t, err)

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "John Doe", loaded[0].Name)
	assert.Equal(t, "123456", loaded[0].AccountNumber)
	assert.Equal(t, "1234", loaded[0].PIN)
	assert.Equal(t, "1000.00", loaded[0].Balance.StringFixed(2))
	assert.Equal(t, "2000.00", loaded[1].Balance.StringFixed(2))
}

func TestCSVAccountStore_HeaderRow(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "customers.csv")
	store := NewCSVAccountStore(path)

	err := store.SaveAll(ctx, fixtureAccounts())
	assert.NoError(t, err)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "name,account_number,pin,balance", lines[0])
	assert.Len(t, lines, 3)
}

func TestCSVAccountStore_SaveAllOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "customers.csv")
	store := NewCSVAccountStore(path)

	assert.NoError(t, store.SaveAll(ctx, fixtureAccounts()))
	assert.NoError(t, store.SaveAll(ctx, fixtureAccounts()[:1]))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestCSVAccountStore_LoadMissingFile(t *testing.T) {
	store := NewCSVAccountStore(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
}

func TestCSVAccountStore_LoadCorruptFile(t *testing.T) {
	t.Run("short record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.csv")
		content := "name,account_number,pin,balance\nJohn Doe,123456\n"
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := NewCSVAccountStore(path).Load(context.Background())
		assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	})

	t.Run("bad balance", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.csv")
		content := "name,account_number,pin,balance\nJohn Doe,123456,1234,lots\n"
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := NewCSVAccountStore(path).Load(context.Background())
		assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.csv")
		assert.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := NewCSVAccountStore(path).Load(context.Background())
		assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	})
}

func TestCSVAccountStore_LoadEmptyLedger(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "customers.csv")
	store := NewCSVAccountStore(path)

	assert.NoError(t, store.SaveAll(ctx, nil))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
