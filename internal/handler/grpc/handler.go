package grpc

import (
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It serves the leave.v1.LeaveService methods on top of the same service
// layer the HTTP handler uses. A handler instance is created once at startup
// and registered on the gRPC server with [Handler.Register].
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register adds the leave service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&LeaveServiceDesc, h)
}

// Interceptors returns the unary interceptor chain the server must install
// for the leave service: trace id and logging first, then session lookup.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withTraceID, h.withLogging, h.withSession}
}
