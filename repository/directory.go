package repository

import "go-bank-ledger/model"

// AccountDirectory is the in-memory ledger: the full set of accounts for
// the life of the process. It is built once from IAccountStore.Load and
// mutated only through the service layer. The directory does not enforce
// account number uniqueness; that check belongs to the caller, before Add.
type AccountDirectory struct {
	accounts []*model.Account
}

func NewAccountDirectory(accounts []model.Account) *AccountDirectory {
	directory := &AccountDirectory{
		accounts: make([]*model.Account, 0, len(accounts)),
	}
	for i := range accounts {
		account := accounts[i]
		directory.accounts = append(directory.accounts, &account)
	}
	return directory
}

// FindByNumber returns the first account with the given number, or nil.
// A linear scan is fine at this scale.
func (d *AccountDirectory) FindByNumber(accountNumber string) *model.Account {
	for _, account := range d.accounts {
		if account.AccountNumber == accountNumber {
			return account
		}
	}
	return nil
}

func (d *AccountDirectory) Add(account *model.Account) {
	d.accounts = append(d.accounts, account)
}

// All returns a value snapshot suitable for handing to IAccountStore.SaveAll.
func (d *AccountDirectory) All() []model.Account {
	snapshot := make([]model.Account, 0, len(d.accounts))
	for _, account := range d.accounts {
		snapshot = append(snapshot, *account)
	}
	return snapshot
}
