package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dojanghq/dojang/internal/pkg/logger"
	"github.com/dojanghq/dojang/internal/server"
)

// @title Dojang API
// @version 1.0
// @description Management backend for a martial arts school: students, belt progressions, federation licensing, monthly fees and events

// @contact.name API Support
// @contact.email soporte@dojang.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A .env file is optional, real environment variables win either way
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
