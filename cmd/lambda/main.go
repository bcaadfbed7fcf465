// Command lambda serves the catalog API behind an API Gateway HTTP API
// (payload format 2.0).
package main

import (
	"context"
	"time"

	"github.com/MKhiriev/beyond-catalog/internal/adapter"
	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/handler/http"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/service"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/getsentry/sentry-go"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("catalog-lambda")
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

	// The execution environment is reused across invocations, so the
	// store client is built once per cold start.
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	verifier := adapter.NewGoogleVerifier(cfg.Adapter, log)
	services := service.NewServices(storages, verifier, buildInfo, cfg.App, log)
	router := http.NewHandler(services, cfg.Server, log).Init()

	lambda.Start(httpadapter.NewV2(router).ProxyWithContext)
}
