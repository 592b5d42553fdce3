// main.go
package main

import (
	"log"

	"vaccination-booking/cmd"
	"vaccination-booking/internal/data/repository"
	"vaccination-booking/internal/usecase"
	"vaccination-booking/internal/wire"
	"vaccination-booking/pkg/database"
	"vaccination-booking/pkg/mailer"
	"vaccination-booking/pkg/report"
	"vaccination-booking/pkg/utils"

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
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// External collaborators
	mail := mailer.NewSMTPMailer(config.Email)
	generator := report.NewPDFGenerator()

	// Wire all dependencies
	service := usecase.NewService(repos, config, mail, generator, logger)
	app := wire.Wiring(service, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
