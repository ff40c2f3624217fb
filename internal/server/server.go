// Package server assembles services, handlers and middleware into the HTTP
// route table served by portfolio-api.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/handlers"
	"github.com/hafiz-aliAwj/portfolio/internal/metrics"
	authmw "github.com/hafiz-aliAwj/portfolio/internal/middleware"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Visitor logging fires on every page view, so its bucket is wider than the
// one guarding the login and contact forms.
const visitorRateFactor = 6

// crudRoutes is satisfied by every EntityHandler instantiation.
type crudRoutes interface {
	List(c *drift.Context)
	Get(c *drift.Context)
	Create(c *drift.Context)
	Update(c *drift.Context)
	Delete(c *drift.Context)
}

type Server struct {
	handler  http.Handler
	tokens   *services.TokenService
	limiters []*authmw.RateLimiter
}

// New wires the application against db. Metrics are registered on reg and
// served from /metrics.
func New(cfg *config.Config, db *database.DB, reg *prometheus.Registry) *Server {
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	emailService := services.NewEmailService(cfg.SMTP, cfg.ContactNotifyEmail)
	visitorService := services.NewVisitorService(db)

	recorder := metrics.NewCollector(reg)

	authHandler := handlers.NewAuthHandler(cfg, userService, tokenService, jwtService, recorder)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(db), recorder)
	skillHandler := handlers.NewEntityHandler[models.Skill, dto.CreateSkillRequest, dto.UpdateSkillRequest](
		handlers.SkillResource, services.NewSkillService(db), recorder)
	experienceHandler := handlers.NewEntityHandler[models.Experience, dto.CreateExperienceRequest, dto.UpdateExperienceRequest](
		handlers.ExperienceResource, services.NewExperienceService(db), recorder)
	educationHandler := handlers.NewEntityHandler[models.Education, dto.CreateEducationRequest, dto.UpdateEducationRequest](
		handlers.EducationResource, services.NewEducationService(db), recorder)
	socialLinkHandler := handlers.NewSocialLinkHandler(services.NewSocialLinkService(db), recorder)
	detailsHandler := handlers.NewDetailsHandler(services.NewDetailsService(db), recorder)
	contactHandler := handlers.NewContactHandler(services.NewContactService(db), visitorService, emailService, recorder)
	visitorHandler := handlers.NewVisitorHandler(visitorService)
	healthHandler := handlers.NewHealthHandler(db)

	authLimiter := authmw.NewRateLimiter(authmw.PerMinute(cfg.RateLimitPerMinute))
	contactLimiter := authmw.NewRateLimiter(authmw.PerMinute(cfg.RateLimitPerMinute))
	visitorLimiter := authmw.NewRateLimiter(authmw.PerMinute(cfg.RateLimitPerMinute * visitorRateFactor))

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(authmw.RealIP(cfg.TrustedProxies))
	app.Use(authmw.Session(jwtService, tokenService))

	metricsHandler := metrics.Handler(reg)
	app.Get("/metrics", func(c *drift.Context) {
		metricsHandler.ServeHTTP(c.Response, c.Request)
	})

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	api.Post("/auth/register", authLimiter.Limit("register", authHandler.Register))
	api.Post("/auth/login", authLimiter.Limit("login", authHandler.Login))
	api.Post("/auth/logout", authHandler.Logout)

	api.Get("/details", detailsHandler.Get)
	api.Get("/projects/:id/related", projectHandler.Related)
	api.Get("/projects/:id/metadata", projectHandler.Metadata)

	api.Post("/contact", contactLimiter.Limit("contact", contactHandler.Submit))
	api.Post("/visitor-log", visitorLimiter.Limit("visitor-log", visitorHandler.Record))

	protected := api.Group("")
	protected.Use(authmw.RequireAuth())

	protected.Get("/auth/me", userHandler.GetMe)
	protected.Put("/details", detailsHandler.Update)

	protected.Get("/contact", contactHandler.List)
	protected.Get("/contact/:id", contactHandler.Get)
	protected.Patch("/contact/:id", contactHandler.UpdateStatus)
	protected.Put("/contact/:id", contactHandler.UpdateStatus)
	protected.Delete("/contact/:id", contactHandler.Delete)

	protected.Get("/visitor-log", authmw.AdminOnly(visitorHandler.List))

	// PUT /{kind}/sequence is served by Update.
	for _, r := range []struct {
		path string
		h    crudRoutes
	}{
		{"/projects", projectHandler},
		{"/skills", skillHandler},
		{"/experiences", experienceHandler},
		{"/education", educationHandler},
		{"/social-links", socialLinkHandler},
	} {
		api.Get(r.path, r.h.List)
		api.Get(r.path+"/:id", r.h.Get)
		protected.Post(r.path, r.h.Create)
		protected.Put(r.path+"/:id", r.h.Update)
		protected.Delete(r.path+"/:id", r.h.Delete)
	}

	return &Server{
		handler:  app,
		tokens:   tokenService,
		limiters: []*authmw.RateLimiter{authLimiter, contactLimiter, visitorLimiter},
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// RunTokenCleanup purges expired revocations every interval until ctx ends.
func (s *Server) RunTokenCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.tokens.CleanupExpired(ctx)
			if err != nil {
				slog.Error("failed to clean up revoked tokens", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				slog.Info("revoked tokens cleaned up", slog.Int64("removed", removed))
			}
		}
	}
}

// Close stops the background rate limiter sweepers.
func (s *Server) Close() {
	for _, l := range s.limiters {
		l.Stop()
	}
}
