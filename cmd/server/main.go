package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smart-cards/internal/adapter"
	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/handler"
	"github.com/MKhiriev/go-smart-cards/internal/handler/http"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/server"
	"github.com/MKhiriev/go-smart-cards/internal/service"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/telemetry"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/internal/workers"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build: %s\n", buildInfo)

	log := logger.NewLogger("smart-cards-server")

	// a missing .env is fine, real deployments use the environment
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	var guestLimiter http.RequestLimiter
	if cfg.Storage.Redis.Address != "" {
		redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting redis")
		}
		defer redisClient.Close()
		guestLimiter = store.NewRedisRateLimiter(redisClient, cfg.App.GuestRateLimit, cfg.App.GuestRateWindow)
	}

	generator, err := adapter.NewGeminiGenerator(cfg.Adapter.Gemini, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating generator")
	}

	services, err := service.NewServices(storages, generator, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, guestLimiter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
