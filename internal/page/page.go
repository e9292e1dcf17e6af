// Package page holds the view model shared by the web page and the terminal
// page. Both renderings build a [View] from the same inputs so they show the
// same texts, formats and error messages.
package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// Row is one rendered leave record. Dates are formatted DD-MM-YYYY.
type Row struct {
	ID        int64
	Name      string
	StartDate string
	EndDate   string
	Reason    string
}

// Session is the sign-in state handed to the renderer. The zero value is a
// signed-out session.
type Session struct {
	SignedIn      bool
	Name          string
	Greeting      string
	SecretMessage string
}

// Status returns "Logged in as <name>", or "" when signed out.
func (s Session) Status() string {
	if !s.SignedIn {
		return ""
	}
	return app.MsgLoggedInAs + s.Name
}

// Form holds the four raw input values of the create form.
type Form struct {
	Name      string
	StartDate string
	EndDate   string
	Reason    string
}

// Request converts the form into a create request. Values are passed through
// unparsed; both dates are checked server-side by the same YYYY-MM-DD parser.
func (f Form) Request() models.CreateLeaveRequest {
	return models.CreateLeaveRequest{
		Name:      f.Name,
		StartDate: strings.TrimSpace(f.StartDate),
		EndDate:   strings.TrimSpace(f.EndDate),
		Reason:    f.Reason,
	}
}

// View is everything either rendering needs to draw the leave page.
type View struct {
	Rows    []Row
	Loading bool

	// ListError is the error of the last failed list request.
	ListError string

	Balance *models.LeaveBalance
	Session Session

	CreateError string
	DeleteError string

	Form    Form
	Version string
}

// NewRows formats leaves for display, keeping store order.
func NewRows(leaves []models.LeaveRequest) []Row {
	rows := make([]Row, 0, len(leaves))
	for _, l := range leaves {
		rows = append(rows, Row{
			ID:        l.ID,
			Name:      l.Name,
			StartDate: l.StartDate.Display(),
			EndDate:   l.EndDate.Display(),
			Reason:    l.Reason,
		})
	}
	return rows
}

// LoadingText is shown instead of the list while it is being fetched.
func (v View) LoadingText() string {
	if v.Loading && len(v.Rows) == 0 {
		return app.MsgLoadingLeaves
	}
	return ""
}

// BalanceText renders the side-panel balance line.
func (v View) BalanceText() string {
	if v.Balance == nil {
		return ""
	}
	return fmt.Sprintf("Total Leave Balance: %d of %d days", v.Balance.Remaining, v.Balance.Allowance)
}

// DeleteErrorMessage returns the first field-error message when err carries
// field errors, else the generic delete failure text.
func DeleteErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		if msg := vErr.FirstMessage(); msg != "" {
			return msg
		}
	}
	return app.MsgFailedToDeleteLeave
}

// CreateErrorMessage returns the raw error text; create failures get no
// dedicated message.
func CreateErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
