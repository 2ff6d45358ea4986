// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"seat-map/cmd"
	"seat-map/internal/data/repository"
	"seat-map/internal/usecase"
	"seat-map/internal/wire"
	"seat-map/pkg/database"
	"seat-map/pkg/utils"

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
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Int("seat_price", config.SeatMap.PricePerSeat),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Layout database is optional
	var db database.PgxIface
	if config.Database.Enabled() {
		db, err = database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
	}

	repos, err := repository.NewRepository(db, config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize repositories", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	go usecase.RunSessionJanitor(ctx, app.Service.SeatMap, config.SeatMap.SweepInterval, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
	}
}
