package main

import (
	"os"

	"github.com/selim/campushub/internal/pkg/logger" // Still needed for initial error logging
	"github.com/selim/campushub/internal/server"
)

// @title CampusHub API
// @version 1.0
// @description Social graph and interaction API for the campus community platform

// @contact.name API Support
// @contact.email support@campushub.dev

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
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase,
	// BuildDependencies and SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
