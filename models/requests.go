package models

// CreateLeaveRequest is the input of the create operation.
//
// Dates are kept as raw strings so that malformed values reach the validator
// and come back as per-field errors instead of JSON decoding failures.
type CreateLeaveRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=280"`
	StartDate string `json:"startDate" validate:"required,leavedate"`
	EndDate   string `json:"endDate" validate:"required,leavedate"`
	Reason    string `json:"reason" validate:"required,min=1,max=280"`
}

// DeleteLeaveRequest is the input of the delete operation.
type DeleteLeaveRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// SignInRequest carries the display name handed over by the identity provider.
type SignInRequest struct {
	Name string `json:"name"`
}
