package main

import (
	"context"
	"fmt"
	"time"

	"weatherfav/internal/adapter"
	"weatherfav/internal/config"
	handlerhttp "weatherfav/internal/handler/http"
	"weatherfav/internal/logger"
	"weatherfav/internal/server"
	"weatherfav/internal/service"
	"weatherfav/internal/store"
)

const startupTimeout = 30 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("weather-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.Connect(startupCtx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storage connection")
		}
	}()

	storages := store.NewStorages(db, log)

	if err := store.EnsureSeedUser(startupCtx, storages.UserRepository, cfg.App, log); err != nil {
		log.Fatal().Err(err).Msg("error ensuring seed user")
	}

	weather := adapter.NewWeatherAPIClient(cfg.Weather, log)
	services := service.NewServices(storages, weather, cfg, log)
	handler := handlerhttp.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
