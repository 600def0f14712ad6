package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/config"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/content"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/transport/http/handler"
	appmiddleware "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.Visitor)

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	contentSvc := content.NewService(deps.Documents, deps.Events)

	healthH := handler.NewHealthHandler()
	gateH := handler.NewGateHandler(contentSvc, deps.DecisionRepo)
	contentH := handler.NewContentHandler(contentSvc)
	authorH := handler.NewAuthorHandler(cfg, deps.JWTProvider)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.Get("/pages/{slug}", gateH.GetPage)
		r.With(sensitiveRL.Limit).Post("/pages/{slug}/age-gate", gateH.Submit)
		r.With(sensitiveRL.Limit).Post("/authors/login", authorH.Login)

		// ── Author routes ────────────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Use(appmiddleware.RequireRole(domain.RoleAuthor))

			r.Post("/content/publish", contentH.Publish)
		})
	})

	return r
}
