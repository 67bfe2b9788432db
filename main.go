// main.go
package main

import (
	"log"
	"time"

	"bookstore-backend/cmd"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/mail"
	"bookstore-backend/internal/otp"
	"bookstore-backend/internal/wire"
	"bookstore-backend/pkg/database"
	"bookstore-backend/pkg/utils"

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

	// Apply schema migrations
	if err := database.RunMigrations(config.Database, config.Migrations.Path); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// OTP store: Redis when configured, in-process otherwise
	otpTTL := time.Duration(config.OTP.ExpiryMinutes) * time.Minute
	issuer := otp.NewIssuer(newOTPStore(config, logger), otpTTL, logger)

	// Mailer: real SMTP in production, log-only in debug mode or when
	// SMTP is not configured
	mailer := newMailer(config, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, issuer, mailer, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func newOTPStore(config *utils.Config, logger *zap.Logger) otp.Store {
	if config.Redis.Enabled {
		store, err := otp.NewRedisStore(config.Redis.Addr, config.Redis.Password)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		logger.Info("Using Redis OTP store", zap.String("addr", config.Redis.Addr))
		return store
	}
	return otp.NewMemoryStore()
}

func newMailer(config *utils.Config, logger *zap.Logger) mail.Sender {
	if config.App.Debug || config.Email.Host == "" {
		logger.Warn("SMTP not configured, OTP codes go to the log")
		return mail.NewLogSender(logger)
	}

	sender, err := mail.NewSMTPSender(config.Email, logger)
	if err != nil {
		logger.Fatal("Failed to configure SMTP", zap.Error(err))
	}
	return sender
}
