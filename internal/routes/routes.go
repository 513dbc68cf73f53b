package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"RECIPEBOOK_BACK-END/internal/handlers"
	"RECIPEBOOK_BACK-END/internal/logger"
	"RECIPEBOOK_BACK-END/internal/middleware"
)

// Options toggles the optional endpoints.
type Options struct {
	Swagger bool
	Metrics bool
}

// SetupRoutes configures all application routes
func SetupRoutes(
	log *logger.Logger,
	authHandler *handlers.AuthHandler,
	recipeHandler *handlers.RecipeHandler,
	healthHandler *handlers.HealthHandler,
	opts Options,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(middleware.RequestLogger(log))
	if opts.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	r.Use(chimid.Recoverer)

	// Health check routes
	r.Get("/healthz", healthHandler.HealthCheck)
	r.Get("/livez", healthHandler.LivenessCheck)
	r.Get("/readyz", healthHandler.ReadinessCheck)

	if opts.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", healthHandler.Test)

		// Users
		r.Post("/user", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Recipes
		r.Route("/recipe", func(r chi.Router) {
			r.Post("/", recipeHandler.CreateRecipe)
			r.Get("/", recipeHandler.ListRecipes)
			r.Get("/{id}", recipeHandler.GetRecipe)
			r.Delete("/{id}", recipeHandler.DeleteRecipe)
		})
	})

	// Root route
	r.Get("/", rootHandler)

	return r
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Recipe book backend is running."))
}
