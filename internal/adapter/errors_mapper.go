package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	// the server answers with models.ErrorResponse; fall back to the raw body
	var errResp models.ErrorResponse
	message := body
	if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if len(errResp.FieldErrors) > 0 {
			return &validators.ValidationError{FieldErrors: errResp.FieldErrors}
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
