package middleware

import (
	"log/slog"
	"net/http"

	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/policy"
	"github.com/templui/profiles/internal/service"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/pages"
)

// AuthMiddleware resolves the auth cookie to a user and stores it in the
// context. Invalid or stale tokens are cleared and the request continues as
// a guest.
func AuthMiddleware(authService *service.AuthService, userService *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := service.TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := authService.VerifyJWT(token)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			user, err := userService.ByID(r.Context(), userID)
			if err != nil {
				slog.Debug("auth token for unknown user", "user_id", userID, "error", err)
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Security: Remove password hash from context
			user.PasswordHash = nil

			next.ServeHTTP(w, r.WithContext(ctxkeys.WithUser(r.Context(), user)))
		})
	}
}

// RequireAuth sends guests to the login page
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) == nil {
			redirect(w, r, "/auth")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireAdmin sends guests to login and answers 403 for signed-in non-admins.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if !policy.IsAdmin(user) {
			slog.Warn("admin route denied", "user_id", user.ID, "path", r.URL.Path)
			ui.RenderStatus(w, r, http.StatusForbidden, pages.Forbidden())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireGuest ensures the user is not authenticated
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) != nil {
			redirect(w, r, "/profile/determine")
			return
		}
		next.ServeHTTP(w, r)
	}
}
