// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/exo-explorer/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A path that
// exists but does not serve the requested method answers 404 with the error
// envelope instead of chi's bare 405, so callers cannot probe which routes
// exist.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
}
