package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/beyond-catalog/internal/adapter"
	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/handler"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/server"
	"github.com/MKhiriev/beyond-catalog/internal/service"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
	"github.com/getsentry/sentry-go"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.Sentry.DSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			Release:     buildInfo.BuildVersion(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("error initializing sentry")
		}
		defer sentry.Flush(2 * time.Second)
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	verifier := adapter.NewGoogleVerifier(cfg.Adapter, log)
	services := service.NewServices(storages, verifier, buildInfo, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
