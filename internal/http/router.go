package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mise-ops/chobo/internal/http/export"
	"github.com/mise-ops/chobo/internal/http/report"
	"github.com/mise-ops/chobo/internal/http/vendors"
)

func New(
	reportsV1 *report.Handler,
	exportsV1 *export.Handler,
	vendorsV1 *vendor.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", reportsV1.Routes)

		r.Route("/exports", exportsV1.Routes)

		r.Route("/vendors", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			vendorsV1.Routes(r)
		})
	})

	return router
}
