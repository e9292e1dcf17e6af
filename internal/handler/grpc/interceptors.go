package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key carrying the trace id, the gRPC twin of the
// X-Trace-ID HTTP header.
const traceIDKey = "x-trace-id"

var traceIDs = utils.NewUUIDGenerator()

func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if traceID == "" {
		traceID = traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))
	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("request handled")

	return resp, err
}

// withSession stores the caller's session in the context. Like its HTTP
// twin it never rejects a call.
func (h *Handler) withSession(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	session := models.Session{}

	if header := strings.TrimSpace(firstMetadata(ctx, "authorization")); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			parsed, err := h.services.AuthService.ParseSession(ctx, token)
			if err != nil {
				logger.FromContext(ctx).Debug().Err(err).Str("func", "*Handler.withSession").Msg(app.MsgTokenIsExpiredOrInvalid)
			} else {
				session = parsed
			}
		}
	}

	return handler(utils.WithSession(ctx, session), req)
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
