package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// LeaveValidationService validates create and delete input before handing
// it to the wrapped [LeaveService]. Invalid input never reaches the store.
type LeaveValidationService struct {
	inner     LeaveService
	validator validators.Validator
}

// NewLeaveValidationService builds the validation wrapper. cfg.StrictDateRange
// enables the end-before-start check.
func NewLeaveValidationService(cfg config.App) LeaveServiceWrapper {
	return &LeaveValidationService{
		validator: validators.NewLeaveValidator(validators.WithStrictDateRange(cfg.StrictDateRange)),
	}
}

func (v *LeaveValidationService) Wrap(inner LeaveService) LeaveService {
	v.inner = inner
	return v
}

func (v *LeaveValidationService) ListLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	return v.inner.ListLeaves(ctx)
}

func (v *LeaveValidationService) CreateLeave(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*LeaveValidationService.CreateLeave").Msg("create request rejected")
		return models.LeaveRequest{}, fmt.Errorf("error validating leave before saving: %w", err)
	}

	return v.inner.CreateLeave(ctx, req)
}

func (v *LeaveValidationService) DeleteLeave(ctx context.Context, req models.DeleteLeaveRequest) (models.LeaveRequest, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*LeaveValidationService.DeleteLeave").Msg("delete request rejected")
		return models.LeaveRequest{}, fmt.Errorf("error validating leave before deleting: %w", err)
	}

	return v.inner.DeleteLeave(ctx, req)
}

func (v *LeaveValidationService) LeaveBalance(ctx context.Context, name string) (models.LeaveBalance, error) {
	return v.inner.LeaveBalance(ctx, name)
}
