package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/profiles/internal/config"
	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/service"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/pages"
	"github.com/templui/profiles/internal/validation"
)

type authHandler struct {
	authService      *service.AuthService
	registrationOpen bool
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:      authService,
		registrationOpen: cfg.RegistrationOpen,
	}
}

func (h *authHandler) AuthPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Auth(pages.AuthData{}))
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			serverError(w, r, "login failed", err)
			return
		}
		slog.Warn("login failed", "email", email)
		ui.RenderStatus(w, r, http.StatusUnauthorized, pages.Auth(pages.AuthData{
			LoginEmail: email,
			LoginError: "Invalid email or password",
		}))
		return
	}

	err = h.authService.SignIn(w, user)
	if err != nil {
		serverError(w, r, "failed to sign in", err)
		return
	}

	slog.Info("user logged in", "user_id", user.ID)
	redirect(w, r, "/profile/determine")
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.registrationOpen {
		ui.RenderStatus(w, r, http.StatusForbidden, pages.Forbidden())
		return
	}

	in := validation.RegistrationInput{
		Email:    r.FormValue("email"),
		Name:     r.FormValue("name"),
		Password: r.FormValue("password"),
	}

	user, err := h.authService.Register(r.Context(), in)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
		case errors.Is(err, service.ErrEmailAlreadyExists):
			verrs = validation.Errors{"email": "This email is already registered."}
		default:
			serverError(w, r, "registration failed", err)
			return
		}
		in.Password = ""
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.Auth(pages.AuthData{
			Register:       in,
			RegisterErrors: verrs,
		}))
		return
	}

	err = h.authService.SignIn(w, user)
	if err != nil {
		serverError(w, r, "failed to sign in", err)
		return
	}

	flash.Success(r.Context(), "Welcome!", "Your account is ready")
	redirect(w, r, "/profile/create")
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
