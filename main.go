// main.go
package main

import (
	"log"

	"airline-reservation/cmd"
	"airline-reservation/internal/data/repository"
	"airline-reservation/internal/wire"
	"airline-reservation/pkg/database"
	"airline-reservation/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("data_dir", config.Store.DataDir),
		zap.Bool("debug", config.App.Debug),
	)

	// Open flat-file store
	store, err := database.InitStore(config.Store)
	if err != nil {
		logger.Fatal("Failed to open data store", zap.Error(err))
	}

	logger.Info("Data store ready", zap.String("data_dir", config.Store.DataDir))

	// Initialize all repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start the interactive menu
	cmd.App(app.Menu)
}
