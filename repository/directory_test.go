// repository/directory_test.go
package repository

import (
	"go-bank-ledger/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountDirectory_FindByNumber(t *testing.T) {
	directory := NewAccountDirectory(fixtureAccounts())

	t.Run("hit", func(t *testing.T) {
		account := directory.FindByNumber("654321")
		assert.NotNil(t, account)
		assert.Equal(t, "Jane Smith", account.Name)
	})

	t.Run("miss", func(t *testing.T) {
		assert.Nil(t, directory.FindByNumber("000000"))
	})

	t.Run("returned pointer mutates the directory", func(t *testing.T) {
		account := directory.FindByNumber("123456")
		account.Balance = account.Balance.Add(decimal.RequireFromString("500"))

		assert.Equal(t, "1500.00", directory.FindByNumber("123456").Balance.StringFixed(2))
	})
}

func TestAccountDirectory_Add(t *testing.T) {
	directory := NewAccountDirectory(fixtureAccounts())

	directory.Add(&model.Account{Name: "Alice Wonderland", AccountNumber: "111111", PIN: "5678", Balance: decimal.RequireFromString("100")})

	assert.NotNil(t, directory.FindByNumber("111111"))
	assert.Len(t, directory.All(), 3)
}

func TestAccountDirectory_AllIsASnapshot(t *testing.T) {
	directory := NewAccountDirectory(fixtureAccounts())

	snapshot := directory.All()
	snapshot[0].Balance = decimal.Zero

	assert.Equal(t, "1000.00", directory.FindByNumber("123456").Balance.StringFixed(2))
}
