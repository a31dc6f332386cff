package routes

import (
	"net/http"

	"github.com/templui/profiles/internal/app"
	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/handler"
	"github.com/templui/profiles/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg)
	profile := handler.NewProfileHandler(app.ProfileService)
	user := handler.NewUserHandler(app.UserService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /{$}", home.HomePage)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /auth", middleware.RequireGuest(auth.AuthPage))
	mux.HandleFunc("POST /auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// ============================================================================
	// PROFILES
	// ============================================================================

	mux.HandleFunc("GET /profile", middleware.RequireAdmin(profile.Index))
	mux.HandleFunc("GET /profile/determine", middleware.RequireAuth(profile.Determine))
	mux.HandleFunc("GET /profile/mine", middleware.RequireAuth(profile.Mine))
	mux.HandleFunc("GET /profile/create", middleware.RequireAuth(profile.CreateForm))
	mux.HandleFunc("POST /profile", middleware.RequireAuth(profile.Create))
	mux.HandleFunc("GET /profile/{id}", middleware.RequireAuth(profile.Show))
	mux.HandleFunc("GET /profile/{id}/edit", middleware.RequireAuth(profile.Edit))
	mux.HandleFunc("PATCH /profile/{id}", middleware.RequireAuth(profile.Update))
	mux.HandleFunc("DELETE /profile/{id}", middleware.RequireAuth(profile.Delete))

	// ============================================================================
	// ADMIN
	// ============================================================================

	mux.HandleFunc("GET /user/{id}/edit", middleware.RequireAdmin(user.Edit))
	mux.HandleFunc("PATCH /user/{id}", middleware.RequireAdmin(user.Update))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (read by pages and the auth page)
		middleware.NonceMiddleware, // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders, // Security headers for all responses (XSS, clickjacking, etc.)
		flash.Middleware,           // Messages left by the previous redirect
		middleware.MethodOverride,  // _method=PATCH/DELETE from HTML forms, before routing
		middleware.CSRFProtection,  // CSRF protection for all state-changing requests
		middleware.AuthMiddleware(app.AuthService, app.UserService),
		middleware.RequestLogging, // After auth so the user id is logged
		middleware.WithURLPath,
	)

	return handler
}
