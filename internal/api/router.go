package api

import (
	"net/http"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/api/handlers"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/config"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/services"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	hub *websocket.Hub,
	userService services.UserServiceProvider,
	exerciseService services.ExerciseServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	wsHandler := handlers.NewWebSocketHandler(hub, cfg.AllowedOrigins)
	staticHandler := handlers.NewStaticHandler(cfg.ViewsDir, cfg.PublicDir)

	r.Get("/", staticHandler.Index)
	if public, ok := staticHandler.Public("/public"); ok {
		r.Handle("/public/*", public)
	}

	r.Route("/api", func(r chi.Router) {
		// Long lived; kept outside the request timeout.
		r.Get("/ws", wsHandler.Serve)

		r.Group(func(r chi.Router) {
			if cfg.RequestTimeout > 0 {
				r.Use(middleware.Timeout(cfg.RequestTimeout))
			}

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.GetAll)
				r.Post("/", userHandler.Create)
				r.Route("/{_id}", func(r chi.Router) {
					r.Post("/exercises", exerciseHandler.Create)
					r.Get("/logs", exerciseHandler.GetLog)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	})

	return r
}
