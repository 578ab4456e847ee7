package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hjkwon/stockroom/internal/http/importcsv"
	"github.com/hjkwon/stockroom/internal/http/item"
	"github.com/hjkwon/stockroom/internal/http/report"
	"github.com/hjkwon/stockroom/internal/http/stock"
	"github.com/hjkwon/stockroom/internal/http/suggestion"
	"github.com/hjkwon/stockroom/internal/http/upload"
)

func New(
	itemsV1 *item.Handler,
	stockV1 *stock.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
	uploadsV1 *upload.Handler,
	suggestionsV1 *suggestion.Handler,
	writeLimit func(http.Handler) http.Handler,
	uploadDir string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Idempotency-Key"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Use(writeLimit)
			itemsV1.Routes(r)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Use(writeLimit)
			stockV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/import", func(r chi.Router) {
			r.Use(writeLimit)
			importV1.Routes(r)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Use(writeLimit)
			uploadsV1.Routes(r)
		})

		r.Route("/suggestions", suggestionsV1.Routes)
	})

	// Uploaded item images are served straight off disk.
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return router
}
