package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// leaveService is a thin pass-through to the leave repository. Input shape
// checks live in [LeaveValidationService].
type leaveService struct {
	leaveRepository store.LeaveRepository

	// annualLeaveDays is the yearly allowance the balance is computed from.
	annualLeaveDays int

	logger *logger.Logger
}

// NewLeaveService constructs the core [LeaveService].
func NewLeaveService(leaveRepository store.LeaveRepository, cfg config.App, logger *logger.Logger) LeaveService {
	return &leaveService{
		leaveRepository: leaveRepository,
		annualLeaveDays: cfg.AnnualLeaveDays,
		logger:          logger,
	}
}

func (s *leaveService) ListLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	leaves, err := s.leaveRepository.ListLeaves(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*leaveService.ListLeaves").Msg("error listing leaves")
		return nil, fmt.Errorf("error listing leaves: %w", err)
	}

	return leaves, nil
}

// CreateLeave converts the raw request into a record and inserts it. Dates
// that do not parse are reported as field errors.
func (s *leaveService) CreateLeave(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error) {
	log := logger.FromContext(ctx)

	leave, err := toLeaveRequest(req)
	if err != nil {
		log.Err(err).Str("func", "*leaveService.CreateLeave").Msg("invalid dates provided")
		return models.LeaveRequest{}, err
	}

	created, err := s.leaveRepository.CreateLeave(ctx, leave)
	if err != nil {
		log.Err(err).Str("func", "*leaveService.CreateLeave").Msg("error creating leave")
		return models.LeaveRequest{}, fmt.Errorf("error creating leave: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("leave created")
	return created, nil
}

func (s *leaveService) DeleteLeave(ctx context.Context, req models.DeleteLeaveRequest) (models.LeaveRequest, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.leaveRepository.DeleteLeave(ctx, req.ID)
	if err != nil {
		log.Err(err).Str("func", "*leaveService.DeleteLeave").Int64("id", req.ID).Msg("error deleting leave")
		return models.LeaveRequest{}, fmt.Errorf("error deleting leave: %w", err)
	}

	log.Info().Int64("id", deleted.ID).Msg("leave deleted")
	return deleted, nil
}

// LeaveBalance subtracts the inclusive day count of every record of name from
// the yearly allowance. Remaining may go negative.
func (s *leaveService) LeaveBalance(ctx context.Context, name string) (models.LeaveBalance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.LeaveBalance{}, validators.NewFieldError(validators.FieldName, "Required")
	}

	leaves, err := s.leaveRepository.ListLeavesByName(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*leaveService.LeaveBalance").Msg("error listing leaves by name")
		return models.LeaveBalance{}, fmt.Errorf("error computing leave balance: %w", err)
	}

	used := 0
	for _, leave := range leaves {
		used += leave.Days()
	}

	return models.LeaveBalance{
		Name:      name,
		Allowance: s.annualLeaveDays,
		Used:      used,
		Remaining: s.annualLeaveDays - used,
	}, nil
}

func toLeaveRequest(req models.CreateLeaveRequest) (models.LeaveRequest, error) {
	vErr := &validators.ValidationError{}

	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		vErr = validators.NewFieldError(validators.FieldStartDate, "Invalid date, expected YYYY-MM-DD")
	}

	end, err := models.ParseDate(req.EndDate)
	if err != nil {
		if vErr.FieldErrors == nil {
			vErr.FieldErrors = make(map[string][]string)
		}
		vErr.FieldErrors[validators.FieldEndDate] = []string{"Invalid date, expected YYYY-MM-DD"}
	}

	if len(vErr.FieldErrors) > 0 {
		return models.LeaveRequest{}, vErr
	}

	return models.LeaveRequest{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}, nil
}
