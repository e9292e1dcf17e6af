package service

import (
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
)

type Services struct {
	LeaveService   LeaveService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The leave service is always wrapped
// in validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	leaveService := NewLeaveValidationService(cfg.App).
		Wrap(NewLeaveService(storages.LeaveRepository, cfg.App, logger))

	return &Services{
		LeaveService:   leaveService,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
