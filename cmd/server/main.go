package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/handler"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/server"
	"github.com/MKhiriev/go-hair-salon/internal/service"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const closeStorageTimeout = 5 * time.Second

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("hair-salon-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_name", cfg.Storage.DB.Name).
		Dur("token_duration", cfg.App.TokenDuration).
		Strs("cors_origins", cfg.CORS.AllowedOrigins).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeStorageTimeout)
		defer cancel()

		if err := storages.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
