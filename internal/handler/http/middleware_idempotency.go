package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
)

const idempotencyKeyHeader = "Idempotency-Key"

// idempotentReplayHeader is set on responses served from the idempotency store.
const idempotentReplayHeader = "Idempotent-Replayed"

// withIdempotency answers a repeated Idempotency-Key with the stored first
// response instead of executing the request again. Requests without the
// header, or servers without an idempotency store, pass straight through.
//
// The request body is fingerprinted with an HMAC keyed by the
// Idempotency-Key; the same key with a different body is rejected with 409.
// Only successful responses are stored, so a request that failed validation
// can be corrected and retried under the same key.
func (h *Handler) withIdempotency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(idempotencyKeyHeader)
		if key == "" || h.idempotency == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r).With().Str("idempotency_key", key).Logger()
		ctx := r.Context()

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIdempotency").Msg("failed to read request body")
			writeError(w, r, err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		fingerprint := utils.HashString(r.Method+" "+r.URL.Path+"\n"+string(body), key)

		stored, found, err := h.idempotency.Get(ctx, key)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if found {
			if stored.Fingerprint != fingerprint {
				log.Warn().Str("func", "*Handler.withIdempotency").Msg("idempotency key reused with a different body")
				writeError(w, r, ErrIdempotencyKeyReused)
				return
			}

			log.Debug().Str("func", "*Handler.withIdempotency").Msg("replaying stored response")
			if stored.ContentType != "" {
				w.Header().Set("Content-Type", stored.ContentType)
			}
			w.Header().Set(idempotentReplayHeader, "true")
			w.WriteHeader(stored.StatusCode)
			w.Write(stored.Body)
			return
		}

		rw := &responseWriter{ResponseWriter: w, captureBody: true}
		next.ServeHTTP(rw, r)

		if rw.status < http.StatusOK || rw.status >= http.StatusMultipleChoices {
			return
		}

		err = h.idempotency.Save(ctx, key, store.StoredResponse{
			StatusCode:  rw.status,
			ContentType: rw.Header().Get("Content-Type"),
			Body:        rw.body,
			Fingerprint: fingerprint,
		})
		if err != nil {
			// the client already has its response; a retry will re-execute
			log.Err(err).Str("func", "*Handler.withIdempotency").Msg("failed to store response")
		}
	})
}
