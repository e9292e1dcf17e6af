package page

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRows_FormatsDates(t *testing.T) {
	rows := NewRows([]models.LeaveRequest{{
		ID:        1,
		Name:      "Alice",
		StartDate: models.NewDate(2024, time.January, 10),
		EndDate:   models.NewDate(2024, time.January, 12),
		Reason:    "Travel",
	}})

	assert.Equal(t, []Row{{ID: 1, Name: "Alice", StartDate: "10-01-2024", EndDate: "12-01-2024", Reason: "Travel"}}, rows)
	assert.Empty(t, NewRows(nil))
}

func TestDeleteErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no error", err: nil, want: ""},
		{
			name: "field error",
			err:  fmt.Errorf("wrapped: %w", validators.NewFieldError(validators.FieldID, "Expected a positive number")),
			want: "Expected a positive number",
		},
		{name: "validation without fields", err: &validators.ValidationError{}, want: "Failed to delete leave! Please try again later."},
		{name: "not found", err: errors.New("leave not found"), want: "Failed to delete leave! Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeleteErrorMessage(tt.err))
		})
	}
}

func TestCreateErrorMessage_IsRaw(t *testing.T) {
	err := validators.NewFieldError(validators.FieldName, "Required")
	assert.Equal(t, err.Error(), CreateErrorMessage(err))
	assert.Empty(t, CreateErrorMessage(nil))
}

func TestSession_Status(t *testing.T) {
	assert.Equal(t, "", Session{}.Status())
	assert.Equal(t, "Logged in as Alice", Session{SignedIn: true, Name: "Alice"}.Status())
}

func TestView_LoadingText(t *testing.T) {
	assert.Equal(t, "Loading leaves...", View{Loading: true}.LoadingText())
	assert.Equal(t, "", View{Loading: true, Rows: []Row{{ID: 1}}}.LoadingText())
	assert.Equal(t, "", View{}.LoadingText())
}

func TestView_BalanceText(t *testing.T) {
	assert.Equal(t, "", View{}.BalanceText())
	assert.Equal(t, "Total Leave Balance: 11 of 14 days",
		View{Balance: &models.LeaveBalance{Allowance: 14, Used: 3, Remaining: 11}}.BalanceText())
}

func TestForm_Request(t *testing.T) {
	req := Form{Name: "Alice", StartDate: " 2024-01-10", EndDate: "2024-01-12 ", Reason: "Travel"}.Request()
	assert.Equal(t, models.CreateLeaveRequest{Name: "Alice", StartDate: "2024-01-10", EndDate: "2024-01-12", Reason: "Travel"}, req)
}
