// File: app/app.go
package app

import (
	"context"
	"go-bank-ledger/cli"
	"go-bank-ledger/config"
	"go-bank-ledger/db"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
	"os"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	ctx := context.Background()

	// --- Wiring All Layers Together ---
	// Storage backend, directory, services, and shell are injected
	// explicitly; nothing reaches for globals beyond config and logger.

	var store repository.IAccountStore
	switch config.AppConfig.Storage.Backend {
	case "postgres":
		database, err := db.Connect()
		if err != nil {
			logger.Log.Fatalf("Error connecting to the database: %v", err)
		}
		defer database.Close()

		if err := db.RunMigrations(database); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
		store = repository.NewPostgresAccountStore(database)
	default:
		store = repository.NewCSVAccountStore(config.AppConfig.Storage.Path)
	}

	accounts, err := store.Load(ctx)
	if err != nil {
		logger.Log.Fatalf("Error loading the ledger: %v", err)
	}

	directory := repository.NewAccountDirectory(accounts)
	authenticator := service.NewAuthenticator()
	ledgerService := service.NewLedgerService(directory, store, authenticator)
	queryService := service.NewQueryService(directory, authenticator)

	menu := cli.NewMenu(ledgerService, queryService, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		logger.Log.Fatalf("Session aborted: %v", err)
	}
}
