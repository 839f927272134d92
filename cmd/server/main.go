package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifin/finapi/internal/config"
	handlerhttp "github.com/unifin/finapi/internal/handler/http"
	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/server"
	"github.com/unifin/finapi/internal/service"
	"github.com/unifin/finapi/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog := logger.NewLogger("finance-server", zerolog.InfoLevel)
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("finance-server", logLevel(cfg.App.Environment))
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err = storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)
	handler := handlerhttp.NewHandler(services, storages, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// logLevel picks the log verbosity for the deployment environment.
func logLevel(env config.Environment) zerolog.Level {
	if env == config.EnvProduction {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
