package http

import (
	"net/http"

	"github.com/codeShowREX/major-project/internal/application/auth"
	"github.com/codeShowREX/major-project/internal/config"
	"github.com/codeShowREX/major-project/internal/transport/http/handler"
	appmiddleware "github.com/codeShowREX/major-project/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		// The session travels in a cookie, so credentialed CORS is required.
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:  deps.UserRepo,
		Mailer:    deps.Mailer,
		ClientURL: cfg.ClientURL,
	})

	secureCookies := cfg.AppEnv == "production"
	authH := handler.NewAuthHandler(authSvc, deps.JWTProvider, secureCookies)
	healthH := handler.NewHealthHandler()

	sessionMw := appmiddleware.Session(deps.JWTProvider, handler.SessionCookieName)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.Route("/auth", func(r chi.Router) {
			r.With(sensitiveRL.Limit).Post("/signup", authH.Signup)
			r.With(sensitiveRL.Limit).Post("/verify-email", authH.VerifyEmail)
			r.With(sensitiveRL.Limit).Post("/login", authH.Login)
			r.Post("/logout", authH.Logout)
			r.With(sensitiveRL.Limit).Post("/forgot-password", authH.ForgotPassword)
			r.With(sensitiveRL.Limit).Post("/reset-password/{token}", authH.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(sessionMw)
				r.Get("/check-auth", authH.CheckAuth)
			})
		})
	})

	return r
}
