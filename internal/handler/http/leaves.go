package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.services.LeaveService.ListLeaves(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if leaves == nil {
		leaves = []models.LeaveRequest{}
	}
	utils.WriteJSON(w, leaves, http.StatusOK)
}

func (h *Handler) createLeave(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateLeaveRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.createLeave").Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.LeaveService.CreateLeave(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteLeave(w http.ResponseWriter, r *http.Request) {
	id, err := leaveIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.LeaveService.DeleteLeave(r.Context(), models.DeleteLeaveRequest{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) leaveBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.services.LeaveService.LeaveBalance(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, balance, http.StatusOK)
}

// leaveIDFromPath reads the {id} URL parameter. A value that is not an
// integer is reported the same way as a non-positive one.
func leaveIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, validators.NewFieldError(validators.FieldID, "Expected a positive number")
	}
	return id, nil
}
