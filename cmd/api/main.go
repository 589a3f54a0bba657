package main

import (
	"os"

	"github.com/galacticorp/hr-portal/internal/pkg/logger"
	"github.com/galacticorp/hr-portal/internal/server"
)

// @title Galactic HR Portal API
// @version 1.0
// @description Employee self-service portal with an activity directory

// @contact.name Portal Support
// @contact.email support@galacticorp.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
