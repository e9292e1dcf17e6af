// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture response metadata.
//
// withLogging uses it to observe the status code and body size after the
// downstream handler has returned. withIdempotency additionally sets
// captureBody to keep a copy of the full body for replay.
//
// WriteHeader is forwarded to the underlying writer exactly once; subsequent
// calls are ignored.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	status int

	wroteHeader bool

	// size is the running total of bytes written to the response body.
	size int

	// captureBody enables accumulating every written byte into body.
	captureBody bool
	body        []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying writer, implicitly sending a 200 status
// first when WriteHeader was not called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	if w.captureBody {
		w.body = append(w.body, b[:n]...)
	}
	return n, err
}
