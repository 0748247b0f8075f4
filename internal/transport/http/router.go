package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pawtag/internal/handler"
	"pawtag/internal/httputil"
	authmw "pawtag/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	DashboardHandler    *handler.DashboardHandler
	DogHandler          *handler.DogHandler
	VaccineHandler      *handler.VaccineHandler
	NotificationHandler *handler.NotificationHandler
	JWTSecret           string
	StaticDir           string // non-empty only for the local storage backend
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
	})

	// Public dog profile - the endpoint a scanned tag resolves to
	r.Get("/dogs/{id}/profile", cfg.DogHandler.PublicProfile)

	// Locally stored photos/tags are served straight from disk
	if cfg.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)
		r.Post("/auth/logout", cfg.AuthHandler.Logout)
		r.Post("/auth/logout-all", cfg.AuthHandler.LogoutAll)

		r.Get("/dashboard", cfg.DashboardHandler.Get)

		r.Route("/dogs", func(r chi.Router) {
			r.Post("/", cfg.DogHandler.Create)
			r.Get("/", cfg.DogHandler.List)
			r.Get("/{id}", cfg.DogHandler.Get)
			r.Patch("/{id}/lost", cfg.DogHandler.SetLost)
			r.Post("/{id}/qr", cfg.DogHandler.RegenerateQR)
			r.Get("/{id}/card", cfg.DogHandler.Card)
			r.Post("/{id}/vaccines", cfg.VaccineHandler.Create)
			r.Get("/{id}/vaccines", cfg.VaccineHandler.List)
		})

		r.Get("/vaccines/due", cfg.VaccineHandler.Due)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", cfg.NotificationHandler.List)
			r.Post("/read", cfg.NotificationHandler.MarkRead)
			r.Post("/read-all", cfg.NotificationHandler.MarkAllRead)
		})
	})

	return r
}
