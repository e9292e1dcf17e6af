package http

import (
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
)

type Handler struct {
	services *service.Services

	// idempotency is nil when idempotent create is disabled.
	idempotency store.IdempotencyStore

	logger *logger.Logger
}

func NewHandler(services *service.Services, idempotency store.IdempotencyStore, logger *logger.Logger) *Handler {
	logger.Info().Bool("idempotency", idempotency != nil).Msg("http handler created")
	return &Handler{
		services:    services,
		idempotency: idempotency,
		logger:      logger,
	}
}
