package grpc

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

func (h *Handler) ListLeaves(ctx context.Context, _ *ListLeavesRequest) (*ListLeavesResponse, error) {
	leaves, err := h.services.LeaveService.ListLeaves(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	if leaves == nil {
		leaves = []models.LeaveRequest{}
	}
	return &ListLeavesResponse{Leaves: leaves}, nil
}

func (h *Handler) CreateLeave(ctx context.Context, req *models.CreateLeaveRequest) (*models.LeaveRequest, error) {
	created, err := h.services.LeaveService.CreateLeave(ctx, *req)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &created, nil
}

func (h *Handler) DeleteLeave(ctx context.Context, req *models.DeleteLeaveRequest) (*models.LeaveRequest, error) {
	deleted, err := h.services.LeaveService.DeleteLeave(ctx, *req)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &deleted, nil
}
