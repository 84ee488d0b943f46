package logger

import (
	"go-bank-ledger/config"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init configures the global logger from the loaded configuration.
// An unknown or empty level falls back to info.
func Init() {
	Log = logrus.New()
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(config.AppConfig.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
