package app

import (
	"log/slog"
	"net/http"
	"time"

	"vitrine-backend/internal/assets"
	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/blogposts"
	"vitrine-backend/internal/cache"
	"vitrine-backend/internal/casestudies"
	"vitrine-backend/internal/companies"
	"vitrine-backend/internal/config"
	"vitrine-backend/internal/contacts"
	"vitrine-backend/internal/middleware"
	"vitrine-backend/internal/signin"
	"vitrine-backend/internal/users"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the public, sign-in and admin routes under /api/v1.
// tokens may be nil, in which case only X-Admin-Key grants admin access.
func NewRouter(cfg *config.Config, svc *Services, registry *assets.Registry, c cache.Cache, tokens *auth.Manager, logger *slog.Logger) http.Handler {
	blogPostsHandler := blogposts.NewHandler(svc.BlogPosts, c, cfg.CacheTTL(), logger)
	caseStudiesHandler := casestudies.NewHandler(svc.CaseStudies, c, cfg.CacheTTL(), logger)
	companiesHandler := companies.NewHandler(svc.Companies, c, cfg.CacheTTL(), logger)
	contactsHandler := contacts.NewHandler(svc.Contacts, logger)
	usersHandler := users.NewHandler(svc.Users, logger)
	signinHandler := signin.NewHandler(svc.SignIn, cfg.CookieSecure, logger)
	assetsHandler := assets.NewHandler(registry, logger)

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, cfg.RateLimitWindow())
	otpLimiter := middleware.NewRateLimiter(cfg.RateLimitOTP, cfg.RateLimitWindow())
	adminOnly := middleware.AdminAuth(cfg.AdminAPIKey, tokens)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/blog-posts", blogPostsHandler.PublicList)
		api.Get("/blog-posts/{id}", blogPostsHandler.PublicGetByID)
		api.Get("/case-studies", caseStudiesHandler.PublicList)
		api.Get("/case-studies/{id}", caseStudiesHandler.PublicGetByID)
		api.Get("/companies", companiesHandler.PublicList)
		api.Get("/companies/{id}", companiesHandler.PublicGetByID)
		api.With(contactLimiter.Middleware).Post("/contact-requests", contactsHandler.Create)
		api.Get("/assets", assetsHandler.List)
		api.Get("/assets/{category}/{name}", assetsHandler.Get)

		api.Route("/auth", func(a chi.Router) {
			a.With(otpLimiter.Middleware).Post("/otp/request", signinHandler.RequestCode)
			a.With(otpLimiter.Middleware).Post("/otp/verify", signinHandler.VerifyCode)
			a.Post("/refresh", signinHandler.Refresh)
			a.Post("/logout", signinHandler.Logout)
			a.With(middleware.Authenticate(tokens)).Get("/me", usersHandler.Me)
		})

		// Middlewares must be attached before the routes they guard.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(adminOnly)
			admin.Post("/blog-posts", blogPostsHandler.AdminCreate)
			admin.Post("/case-studies", caseStudiesHandler.AdminCreate)
			admin.Post("/companies", companiesHandler.AdminCreate)
			admin.Get("/contact-requests", contactsHandler.AdminList)
			admin.Get("/contact-requests/{id}", contactsHandler.AdminGetByID)
			admin.Get("/users", usersHandler.AdminList)
			admin.Get("/users/{id}", usersHandler.AdminGetByID)
		})
	})

	return r
}
