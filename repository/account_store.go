package repository

import (
	"context"

	"go-bank-ledger/model"
)

// IAccountStore is the durable storage contract for the ledger. Load reads
// every persisted account; SaveAll rewrites the persisted state wholesale.
// There are no partial-save semantics: a failure mid-save may leave storage
// behind the in-memory directory.
type IAccountStore interface {
	Load(ctx context.Context) ([]model.Account, error)
	SaveAll(ctx context.Context, accounts []model.Account) error
}
