package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// withSession resolves the caller's session and stores it in the request
// context under [utils.SessionCtxKey]. It never rejects a request: a missing,
// expired or forged token yields a signed-out session and handlers that need
// a signed-in user check for it themselves.
//
// The token is read from the "Authorization: Bearer" header first and from
// the session cookie second, so both the API client and the leave page are
// served by the same middleware.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := models.Session{}

		if token := sessionToken(r); token != "" {
			parsed, err := h.services.AuthService.ParseSession(ctx, token)
			if err != nil {
				logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.withSession").Msg(app.MsgTokenIsExpiredOrInvalid)
			} else {
				session = parsed
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

func sessionToken(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err == nil {
			return token
		}
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
