package models

// Error codes carried in [ErrorResponse.Code].
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeConflict            = "CONFLICT"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the JSON body written for every failed API call.
//
// FieldErrors is only set for validation failures and maps a JSON field name
// to its messages, in the order the rules were checked.
type ErrorResponse struct {
	Code        string              `json:"code"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// GreetingResponse is returned by the hello endpoint.
type GreetingResponse struct {
	Greeting string `json:"greeting"`
}

// SecretMessageResponse is returned to signed-in users only.
type SecretMessageResponse struct {
	Message string `json:"message"`
}
