// Package main is the entry point of the application
package main

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tecu23/backend-status/pkg/config"
	"github.com/tecu23/backend-status/pkg/uptime"
)

// App encapsulates global dependencies
type application struct {
	Logger *zap.Logger
	Config *config.Config
	Server *http.Server

	Clock  uptime.Clock
	Uptime *uptime.Tracker
}

func main() {
	clock := uptime.SystemClock{}
	tracker := uptime.NewTracker(clock.Now())

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	logger := initLogger(cfg.Debug)
	defer logger.Sync()

	app := &application{
		Logger: logger,
		Config: cfg,
		Clock:  clock,
		Uptime: tracker,
	}

	err = app.serve()
	if err != nil {
		logger.Fatal("error serving", zap.Error(err))
	}
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}
