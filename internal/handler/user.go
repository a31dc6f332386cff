package handler

import (
	"errors"
	"net/http"

	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/service"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/pages"
	"github.com/templui/profiles/internal/validation"
)

// UserHandler serves the admin account editor.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.ByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, service.ErrUserNotFound) {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}
	if err != nil {
		serverError(w, r, "failed to load user", err)
		return
	}

	ui.Render(w, r, pages.UserEdit(user, nil))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	update := service.UserUpdate{
		Name:    r.FormValue("name"),
		IsAdmin: r.FormValue("is_admin"),
	}

	_, err := h.userService.UpdateByAdmin(r.Context(), actor, id, update)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			h.renderInvalid(w, r, id, update, verrs)
		case errors.Is(err, service.ErrUserNotFound):
			ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		case !renderServiceError(w, r, err):
			serverError(w, r, "failed to update user", err)
		}
		return
	}

	flash.Success(r.Context(), "Saved", "The user has been updated")
	redirect(w, r, "/user/"+id+"/edit")
}

func (h *UserHandler) renderInvalid(w http.ResponseWriter, r *http.Request, id string, update service.UserUpdate, verrs validation.Errors) {
	user, err := h.userService.ByID(r.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}
	if err != nil {
		serverError(w, r, "failed to load user", err)
		return
	}

	user.Name = update.Name
	ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.UserEdit(user, verrs))
}
