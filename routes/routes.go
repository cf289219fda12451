package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mbolis/hvac-backend/app"
	"github.com/mbolis/hvac-backend/log"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(
		middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Logger, NoColor: true}),
		middleware.Recoverer,
	)
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	root.Mount("/api", apiRouter(app))

	if app.StaticDir != "" {
		root.Mount("/", servePublicFiles(app.StaticDir))
	}

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/quote", SubmitQuote(app))
	api.Post("/contact", SubmitContact(app))

	api.Get("/testimonials", ListTestimonials(app))
	api.Post("/testimonials", SubmitTestimonial(app))

	api.Get("/health", Health(app))

	return api
}

func servePublicFiles(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
