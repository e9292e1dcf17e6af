package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into a gRPC status. Validation errors
// keep their per-field text; internal failures never leak their message.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, store.ErrLeaveNotFound):
		return status.Error(codes.NotFound, app.MsgLeaveNotFound)
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return status.Error(codes.Unauthenticated, app.MsgSignInRequired)
	default:
		logger.FromContext(ctx).Err(err).Str("func", "toStatus").Msg("request failed")
		return status.Error(codes.Internal, app.MsgInternalServerError)
	}
}
