package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/service"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/pages"
)

// redirect saves pending flash messages and sends the browser to path.
// HTMX requests get HX-Redirect so the whole page navigates.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	flash.Persist(r.Context(), w)

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// renderServiceError answers the shared service failures. It returns false
// when err is none of them and the caller must handle it.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
	case errors.Is(err, service.ErrUnauthorized):
		ui.RenderStatus(w, r, http.StatusForbidden, pages.Forbidden())
	default:
		return false
	}
	return true
}

func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
