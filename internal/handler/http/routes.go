package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withSession)

	router.Route("/api", func(r chi.Router) {
		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.listLeaves)
			r.With(h.withIdempotency).Post("/", h.createLeave)
			r.Get("/balance", h.leaveBalance)
			r.Delete("/{id}", h.deleteLeave)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", h.signIn)
			r.Post("/signout", h.signOut)
			r.Get("/session", h.session)
			r.Get("/secret", h.secretMessage)
		})

		r.Get("/hello", h.hello)
		r.Get("/version", h.getServerVersion)
	})

	// leave page
	router.Get("/", h.leavePage)
	router.Post("/leaves", h.pageCreateLeave)
	router.Post("/leaves/{id}/delete", h.pageDeleteLeave)
	router.Post("/signin", h.pageSignIn)
	router.Post("/signout", h.pageSignOut)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
