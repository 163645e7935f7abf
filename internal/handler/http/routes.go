package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/MKhiriev/exo-explorer/internal/utils"
)

// authRequestsPerMinute bounds credential and code attempts per client IP.
const authRequestsPerMinute = 60

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.version)

		r.Route("/auth", func(r chi.Router) {
			r.Use(httprate.LimitByIP(authRequestsPerMinute, time.Minute))

			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/verify-otp", h.verifyOtp)
			r.Post("/verify-backup-code", h.verifyBackupCode)
			r.With(h.auth).Post("/generate-backup-codes", h.generateBackupCodes)
		})

		r.Route("/exoplanets", func(r chi.Router) {
			r.Get("/", h.listExoplanets)
			r.Get("/summary", h.searchSummaries)
			r.Get("/habitable", h.habitableExoplanets)
			r.Get("/{id}", h.getExoplanet)
			r.Get("/{id}/details", h.getExoplanetDetails)

			r.Group(func(r chi.Router) {
				r.Use(h.auth, h.adminOnly)

				r.Post("/", h.createExoplanet)
				r.Post("/refresh", h.refreshExoplanets)
				r.Put("/{id}", h.updateExoplanet)
				r.Delete("/{id}", h.deleteExoplanet)
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/favorites", h.favorites)
			r.Post("/toggle-favorite", h.toggleFavorite)
			r.Get("/profile", h.profile)
			r.Put("/update-profile", h.updateProfile)
			r.Post("/change-password", h.changePassword)
			r.Put("/preferences", h.updatePreferences)
			r.Get("/backup-codes", h.backupCodeStats)
		})

		r.Route("/admin/data-loader", func(r chi.Router) {
			r.Use(h.auth, h.adminOnly)

			r.Post("/insert-500-exoplanets", h.insertSampleExoplanets)
			r.Post("/insert-habitable-exoplanets", h.insertHabitableExoplanets)
			r.Delete("/clear-exoplanets", h.clearExoplanets)
		})

		// test-only helpers, public like the backend's test profile
		r.Route("/test", func(r chi.Router) {
			r.Delete("/reset-user", h.resetUser)
			r.Delete("/reset-db", h.resetDB)
			r.Delete("/reset-all", h.resetAll)
			r.Get("/otp", h.peekOtp)
		})
	})

	return router
}
