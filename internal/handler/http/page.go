package http

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/page"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// leavePage renders the leave page. The list is fetched synchronously, so the
// loading placeholder never shows here; it is a terminal-page state.
func (h *Handler) leavePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, page.View{}, http.StatusOK)
}

func (h *Handler) pageCreateLeave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	form := page.Form{
		Name:      r.PostFormValue("name"),
		StartDate: r.PostFormValue("startDate"),
		EndDate:   r.PostFormValue("endDate"),
		Reason:    r.PostFormValue("reason"),
	}

	if _, err := h.services.LeaveService.CreateLeave(r.Context(), form.Request()); err != nil {
		h.renderPage(w, r, page.View{Form: form, CreateError: page.CreateErrorMessage(err)}, statusFromError(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) pageDeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, err := leaveIDFromPath(r)
	if err == nil {
		_, err = h.services.LeaveService.DeleteLeave(r.Context(), models.DeleteLeaveRequest{ID: id})
	}
	if err != nil {
		h.renderPage(w, r, page.View{DeleteError: page.DeleteErrorMessage(err)}, statusFromError(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) pageSignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	session, err := h.services.AuthService.SignIn(r.Context(), r.PostFormValue("name"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.pageSignIn").Msg("sign in rejected")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setSessionCookie(w, session)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) pageSignOut(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderPage fills view with the list, balance and session data and writes
// the page. Failures to load side-panel data are logged and leave that part
// empty.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, view page.View, status int) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	leaves, err := h.services.LeaveService.ListLeaves(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderPage").Msg("error listing leaves")
		view.ListError = page.CreateErrorMessage(err)
	}
	view.Rows = page.NewRows(leaves)

	session, _ := utils.GetSessionFromContext(ctx)
	view.Session = h.pageSession(ctx, session)

	if session.SignedIn {
		if balance, err := h.services.LeaveService.LeaveBalance(ctx, session.Name); err == nil {
			view.Balance = &balance
		} else {
			log.Err(err).Str("func", "*Handler.renderPage").Msg("error computing leave balance")
		}
	}

	view.Version = h.services.AppInfoService.GetAppVersion(ctx)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, view); err != nil {
		log.Err(err).Str("func", "*Handler.renderPage").Msg("error rendering page")
	}
}

func (h *Handler) pageSession(ctx context.Context, session models.Session) page.Session {
	if !session.SignedIn {
		return page.Session{}
	}

	secret, err := h.services.AuthService.SecretMessage(ctx, session)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.pageSession").Msg("error reading secret message")
	}

	return page.Session{
		SignedIn:      true,
		Name:          session.Name,
		Greeting:      h.services.AuthService.Greeting(ctx, session.Name),
		SecretMessage: secret,
	}
}
