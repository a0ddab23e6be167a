package main

import (
	"context"
	"os"

	"github.com/yigit/campuserp/internal/config"
	"github.com/yigit/campuserp/internal/pkg/logger"
	"github.com/yigit/campuserp/internal/server"
)

// @title Campus ERP API
// @version 1.0
// @description Session-scoped portal for students, staff and administrators

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Client token issued in the X-Client-Token header

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "configs/config.yaml")

	srv, err := server.NewServer(context.Background(), configPath)
	if err != nil {
		// the logger keeps its init defaults when configuration failed
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
