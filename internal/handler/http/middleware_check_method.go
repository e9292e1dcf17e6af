// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers a known path with an unregistered method with 405. This handler
// answers with a JSON 404 instead so that callers using an unsupported method
// cannot probe which paths exist. A route that does handle the method is
// served normally; chi only reaches this handler when the exact method lookup
// failed, so the check guards against misrouted requests.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg(app.MsgMethodNotAllowed)
		utils.WriteJSON(w, models.ErrorResponse{
			Code:    models.CodeNotFound,
			Message: http.StatusText(http.StatusNotFound),
		}, http.StatusNotFound)
	}
}
