package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/service"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/pages"
	"github.com/templui/profiles/internal/validation"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// destinationPath maps a post-operation destination to a URL.
func destinationPath(dest service.Destination, profileID string) string {
	switch dest {
	case service.DestinationOwnProfile:
		if profileID != "" {
			return "/profile/" + profileID
		}
		return "/profile/mine"
	case service.DestinationCreateForm:
		return "/profile/create"
	case service.DestinationProfileList:
		return "/profile"
	default:
		return "/"
	}
}

func profileInput(r *http.Request) validation.ProfileInput {
	return validation.ProfileInput{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Gender:    r.FormValue("gender"),
		Birthdate: r.FormValue("birthdate"),
	}
}

func (h *ProfileHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	result, err := h.profileService.List(r.Context(), page)
	if err != nil {
		serverError(w, r, "failed to list profiles", err)
		return
	}

	ui.Render(w, r, pages.ProfileIndex(result))
}

func (h *ProfileHandler) Determine(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dest, err := h.profileService.DetermineRoute(r.Context(), user)
	if err != nil {
		serverError(w, r, "failed to determine profile route", err)
		return
	}

	redirect(w, r, destinationPath(dest, ""))
}

func (h *ProfileHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	view, err := h.profileService.ViewOwn(r.Context(), user)
	if errors.Is(err, service.ErrNoProfile) {
		redirect(w, r, "/profile/create")
		return
	}
	if err != nil {
		if !renderServiceError(w, r, err) {
			serverError(w, r, "failed to load own profile", err)
		}
		return
	}

	ui.Render(w, r, pages.ProfileShow(view.Profile, view.User))
}

// CreateForm shows the empty form, or sends users who already have a
// profile to it.
func (h *ProfileHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dest, err := h.profileService.CreateForm(r.Context(), user)
	if err != nil {
		serverError(w, r, "failed to determine profile route", err)
		return
	}
	if dest != service.DestinationCreateForm {
		redirect(w, r, destinationPath(dest, ""))
		return
	}

	ui.Render(w, r, pages.ProfileForm(pages.ProfileFormData{}))
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	in := profileInput(r)

	view, err := h.profileService.Create(r.Context(), user, in)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.ProfileForm(pages.ProfileFormData{Input: in, Errors: verrs}))
		case errors.Is(err, service.ErrProfileExists):
			redirect(w, r, "/profile/mine")
		default:
			serverError(w, r, "failed to create profile", err)
		}
		return
	}

	redirect(w, r, destinationPath(service.DestinationOwnProfile, view.Profile.ID))
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	view, err := h.profileService.Get(r.Context(), user, r.PathValue("id"))
	if err != nil {
		if !renderServiceError(w, r, err) {
			serverError(w, r, "failed to load profile", err)
		}
		return
	}

	ui.Render(w, r, pages.ProfileShow(view.Profile, view.User))
}

func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.profileService.EditForm(r.Context(), user, r.PathValue("id"))
	if err != nil {
		if !renderServiceError(w, r, err) {
			serverError(w, r, "failed to load profile for edit", err)
		}
		return
	}

	ui.Render(w, r, pages.ProfileForm(pages.NewProfileFormData(profile)))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")
	in := profileInput(r)

	dest, err := h.profileService.Update(r.Context(), user, id, in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.renderInvalidEdit(w, r, id, in, verrs)
			return
		}
		if !renderServiceError(w, r, err) {
			serverError(w, r, "failed to update profile", err)
		}
		return
	}

	redirect(w, r, destinationPath(dest, id))
}

// renderInvalidEdit re-renders the edit form with the rejected input. The
// profile is loaded through EditForm so a stranger's invalid submission
// still gets 403 or 404 instead of a form.
func (h *ProfileHandler) renderInvalidEdit(w http.ResponseWriter, r *http.Request, id string, in validation.ProfileInput, verrs validation.Errors) {
	profile, err := h.profileService.EditForm(r.Context(), ctxkeys.User(r.Context()), id)
	if err != nil {
		if !renderServiceError(w, r, err) {
			serverError(w, r, "failed to load profile for edit", err)
		}
		return
	}

	ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.ProfileForm(pages.ProfileFormData{
		Profile: profile,
		Input:   in,
		Errors:  verrs,
	}))
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dest, err := h.profileService.Delete(r.Context(), user, r.PathValue("id"))
	if err != nil {
		if !renderServiceError(w, r, err) {
			serverError(w, r, "failed to delete profile", err)
		}
		return
	}

	redirect(w, r, destinationPath(dest, ""))
}
