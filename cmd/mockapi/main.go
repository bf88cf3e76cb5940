package main

import (
	"os"

	"github.com/yigit/alumnisphere/internal/config"
	"github.com/yigit/alumnisphere/internal/mockapi"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
)

// cmd/mockapi serves the in-memory AlumniSphere platform mock, seeded with
// the default dataset, for offline development of the client.
func main() {
	cfg, err := config.LoadConfig(config.GetEnv("ALUMNISPHERE_CONFIG", "configs/config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.PrettyLogging(),
	})
	lgr := logger.Component("mockapi")

	srv, err := mockapi.New(mockapi.Options{
		JWTSecret: cfg.Mock.JWTSecret,
		UploadDir: cfg.Mock.UploadDir,
		Logger:    lgr,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize mock platform")
		os.Exit(1)
	}

	if err := mockapi.Seed(srv.Store(), lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed mock platform data")
		os.Exit(1)
	}

	if err := srv.Run(cfg.Mock.Port); err != nil {
		lgr.Error().Err(err).Msg("Mock platform terminated with an error")
		os.Exit(1)
	}
}
