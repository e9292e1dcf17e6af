package main

import (
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/client"
	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/tui"
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

	log := logger.NewClientLogger("leave-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	ui := tui.New(services, buildInfo, log)

	var app client.Client
	app, err = client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
