package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/go-playground/validator/v10"
)

// JSON field names reported in [ValidationError.FieldErrors].
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldReason    = "reason"
)

const (
	tagLeaveDate = "leavedate"
	tagDateRange = "daterange"
)

// LeaveValidator validates leave create and delete requests.
type LeaveValidator struct {
	validate        *validator.Validate
	strictDateRange bool
}

// Option configures a [LeaveValidator].
type Option func(*LeaveValidator)

// WithStrictDateRange rejects create requests whose end date precedes the
// start date. Without it such ranges are accepted.
func WithStrictDateRange(strict bool) Option {
	return func(v *LeaveValidator) {
		v.strictDateRange = strict
	}
}

// NewLeaveValidator constructs a [LeaveValidator] and returns it as a [Validator].
func NewLeaveValidator(opts ...Option) Validator {
	v := &LeaveValidator{validate: validator.New()}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(jsonFieldName)
	// registration only fails for an empty tag or nil func
	_ = v.validate.RegisterValidation(tagLeaveDate, isLeaveDate)
	if v.strictDateRange {
		v.validate.RegisterStructValidation(validateDateRange, models.CreateLeaveRequest{})
	}

	return v
}

// Validate dispatches on the dynamic type of obj. Both value and pointer forms
// of [models.CreateLeaveRequest] and [models.DeleteLeaveRequest] are accepted.
//
// When fields are given only errors for those JSON fields are reported.
// Returns ErrUnsupportedType for any other type.
func (v *LeaveValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateLeaveRequest:
		return v.validateStruct(ctx, value, fields)
	case *models.CreateLeaveRequest:
		return v.validateStruct(ctx, *value, fields)

	case models.DeleteLeaveRequest:
		return v.validateStruct(ctx, value, fields)
	case *models.DeleteLeaveRequest:
		return v.validateStruct(ctx, *value, fields)

	default:
		return ErrUnsupportedType
	}
}

func (v *LeaveValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	result := &ValidationError{}
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		result.add(fe.Field(), message(fe))
	}

	if len(result.FieldErrors) == 0 {
		return nil
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Int64 {
			return "Expected a positive number"
		}
		return "Required"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "gt":
		return "Expected a positive number"
	case tagLeaveDate:
		return "Invalid date, expected YYYY-MM-DD"
	case tagDateRange:
		return "End date must not be before start date"
	default:
		return fmt.Sprintf("Failed on the %q rule", fe.Tag())
	}
}

func isLeaveDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateDateRange only compares dates that both parse; malformed dates are
// reported by the leavedate rule.
func validateDateRange(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.CreateLeaveRequest)

	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		return
	}
	end, err := models.ParseDate(req.EndDate)
	if err != nil {
		return
	}

	if end.Before(start) {
		sl.ReportError(req.EndDate, FieldEndDate, "EndDate", tagDateRange, "")
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
