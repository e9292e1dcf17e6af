package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/tui"
	"github.com/MKhiriev/go-leave-tracker/internal/workers"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNilDependency
	}

	refresh := workers.NewRefreshWorker(services.LeaveList, cfg.RefreshInterval, logger)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refresh),
		logger:   logger,
	}, nil
}

// Run starts the background refresh and blocks in the UI. Leaving the UI with
// ctrl+c is a normal exit.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("error running ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
