package models

import "time"

// LeaveRequest is one persisted leave application.
//
// Records are immutable after creation: the only lifecycle transitions are
// create (validated insert) and delete (lookup by ID).
type LeaveRequest struct {
	// ID is assigned by the store on insert and used as the delete key.
	ID int64 `json:"id"`

	// Name is the applicant's name, 1–280 characters.
	Name string `json:"name"`

	// StartDate is the first day of leave.
	StartDate Date `json:"startDate"`

	// EndDate is the last day of leave. It is not required to follow StartDate
	// unless strict date ranges are enabled.
	EndDate Date `json:"endDate"`

	// Reason is the free-text justification, 1–280 characters.
	Reason string `json:"reason"`

	// CreatedAt is stamped by the store and only used for diagnostics.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Days returns the inclusive length of the leave in calendar days.
func (l LeaveRequest) Days() int {
	return l.StartDate.DaysUntil(l.EndDate)
}

// TableName returns the name of the database table associated with LeaveRequest.
func (l LeaveRequest) TableName() string {
	return "leaves"
}
