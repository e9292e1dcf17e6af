package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBodyBytes bounds request bodies decoded by DecodeJSON.
const maxJSONBodyBytes = 1 << 20

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails it responds with 500 Internal Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, leaves, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields and
// bodies larger than 1 MiB.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}
