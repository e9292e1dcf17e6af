package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/handler"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/server"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("leave-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("grpc_address", cfg.Server.GRPCAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.IdempotencyStore, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
