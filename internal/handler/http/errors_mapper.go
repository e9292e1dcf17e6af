package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrInvalidJSON:          http.StatusBadRequest,
	ErrIdempotencyKeyReused: http.StatusConflict,

	store.ErrLeaveNotFound: http.StatusNotFound,
	store.ErrLeaveNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

var statusCodes = map[int]string{
	http.StatusBadRequest:          models.CodeBadRequest,
	http.StatusUnauthorized:        models.CodeUnauthorized,
	http.StatusNotFound:            models.CodeNotFound,
	http.StatusConflict:            models.CodeConflict,
	http.StatusInternalServerError: models.CodeInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON error body for err. Internal failures never
// leak their message.
func errorResponse(err error) (models.ErrorResponse, int) {
	status := statusFromError(err)
	resp := models.ErrorResponse{Code: statusCodes[status]}

	var vErr *validators.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp.Message = app.MsgInvalidDataProvided
		resp.FieldErrors = vErr.FieldErrors
	case errors.Is(err, store.ErrLeaveNotFound):
		resp.Message = app.MsgLeaveNotFound
	case errors.Is(err, ErrIdempotencyKeyReused):
		resp.Message = app.MsgIdempotencyKeyReused
	case status == http.StatusUnauthorized:
		resp.Message = app.MsgSignInRequired
	case status == http.StatusInternalServerError:
		resp.Message = app.MsgInternalServerError
	default:
		resp.Message = err.Error()
	}

	return resp, status
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status)
}
