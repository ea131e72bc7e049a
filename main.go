// main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sudhev0011/VoterMngmtServer/auth"
	"github.com/sudhev0011/VoterMngmtServer/config"
	"github.com/sudhev0011/VoterMngmtServer/models"
	"github.com/sudhev0011/VoterMngmtServer/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// TranslateError turns driver-level unique violations into
	// gorm.ErrDuplicatedKey, which the stores rely on.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected")

	if err := db.AutoMigrate(&models.User{}, &models.Voter{}, &models.Todo{}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService([]byte(cfg.TokenSecret), cfg.TokenTTL)

	var google auth.IdentityVerifier
	if cfg.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(cfg.GoogleClientID)
		if err != nil {
			slog.Error("failed to initialise google verifier", "error", err)
			os.Exit(1)
		}
		google = verifier
	}

	router := routes.SetupRouter(cfg, db, tokens, google)

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
