package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(app.Config.CORSOrigins),
		middleware.RateLimit(app.Config.RateLimitPerWindow, app.Config.RateLimitWindow),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)

		r.Route("/blog", func(r chi.Router) {
			r.Post("/generate", app.BlogGenerate)
			r.Post("/save", app.BlogSave)
			r.Post("/process-images", app.BlogProcessImages)
			r.Get("/model", app.BlogModel)
			r.Get("/list", app.BlogList)
			r.Get("/{id}", app.BlogGet)
			r.Put("/{id}", app.BlogUpdate)
			r.Delete("/{id}", app.BlogDelete)
		})
	})

	return r
}
