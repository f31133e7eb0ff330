package main

import (
	"os"

	"github.com/campuscell/studentcell/internal/pkg/logger"
	"github.com/campuscell/studentcell/internal/server"
)

func main() {
	// Initialize the server with all its dependencies.
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupStores, BuildDependencies, SetupRouter.
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger set up by the logger package's init.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
