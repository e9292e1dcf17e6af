package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// sessionCookieName carries the session token for the leave page.
const sessionCookieName = "leave_session"

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.signIn").Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.services.AuthService.SignIn(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	setSessionCookie(w, session)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.Token))
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// session reports the caller's session; a missing or invalid token is a
// signed-out session, not an error.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())
	session.Token = ""
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) secretMessage(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	message, err := h.services.AuthService.SecretMessage(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SecretMessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	greeting := h.services.AuthService.Greeting(r.Context(), r.URL.Query().Get("text"))
	utils.WriteJSON(w, models.GreetingResponse{Greeting: greeting}, http.StatusOK)
}

func setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
