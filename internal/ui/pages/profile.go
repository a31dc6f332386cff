package pages

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/model"
	"github.com/templui/profiles/internal/policy"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/components/form"
	"github.com/templui/profiles/internal/ui/layouts"
	"github.com/templui/profiles/internal/validation"
)

var genderOptions = []form.Option{
	{Value: "", Label: "Select..."},
	{Value: "1", Label: "Male"},
	{Value: "0", Label: "Female"},
}

func GenderLabel(gender bool) string {
	if gender {
		return "Male"
	}
	return "Female"
}

// ProfileIndex is the admin listing of every profile.
func ProfileIndex(page *model.ProfilePage) templ.Component {
	content := ui.Func(func(h *ui.HTML) {
		h.Raw(`<h2 class="mb-4 text-2xl font-bold">Profiles</h2>`)

		if len(page.Profiles) == 0 {
			h.Raw(`<p class="text-gray-600">No profiles yet.</p>`)
			return
		}

		h.Raw(`<table class="w-full text-left"><thead><tr><th>Name</th><th>Gender</th><th>Birthdate</th><th></th></tr></thead><tbody>`)
		for _, p := range page.Profiles {
			h.Raw("<tr><td><a")
			h.Attr("href", "/profile/"+p.ID)
			h.Raw(">")
			h.Text(p.FullName())
			h.Raw("</a></td><td>")
			h.Text(GenderLabel(p.Gender))
			h.Raw("</td><td>")
			h.Text(p.BirthdateString())
			h.Raw("</td><td class=\"flex gap-2\"><a")
			h.Attr("href", "/profile/"+p.ID+"/edit")
			h.Raw(">Edit</a><a")
			h.Attr("href", "/user/"+p.UserID+"/edit")
			h.Raw(">Account</a></td></tr>")
		}
		h.Raw("</tbody></table>")

		h.Raw(`<nav class="mt-4 flex gap-4" aria-label="pagination">`)
		if page.HasPrev() {
			h.Raw("<a")
			h.Attr("href", "/profile?page="+strconv.Itoa(page.Page-1))
			h.Raw(` rel="prev">Previous</a>`)
		}
		h.Raw("<span>Page ")
		h.Text(strconv.Itoa(page.Page) + " of " + strconv.Itoa(page.TotalPages()))
		h.Raw("</span>")
		if page.HasNext() {
			h.Raw("<a")
			h.Attr("href", "/profile?page="+strconv.Itoa(page.Page+1))
			h.Raw(` rel="next">Next</a>`)
		}
		h.Raw("</nav>")
	})

	return layouts.Base("Profiles", []layouts.Crumb{{Label: "Home", Href: "/"}, {Label: "Profiles"}}, content)
}

// ProfileShow shows a profile to its owner or an admin. Edit and delete
// controls only appear where the actor may use them.
func ProfileShow(profile *model.Profile, owner *model.User) templ.Component {
	return ui.Func(func(h *ui.HTML) {
		actor := ctxkeys.User(h.Context())

		content := ui.Func(func(h *ui.HTML) {
			h.Raw(`<h2 class="mb-4 text-2xl font-bold">`)
			h.Text(profile.FullName())
			h.Raw("</h2><dl class=\"grid grid-cols-2 gap-2\">")
			term(h, "First name", profile.FirstName)
			term(h, "Last name", profile.LastName)
			term(h, "Gender", GenderLabel(profile.Gender))
			term(h, "Birthdate", profile.BirthdateString())
			term(h, "Account", owner.DisplayName())
			h.Raw("</dl>")

			h.Raw(`<div class="mt-6 flex gap-4">`)
			if policy.IsAdminOrOwner(actor, profile) {
				h.Raw("<a")
				h.Attr("href", "/profile/"+profile.ID+"/edit")
				h.Raw(` class="rounded-md border px-4 py-2">Edit</a>`)
			}
			if policy.IsOwner(actor, profile) {
				form.Open(h, "/profile/"+profile.ID, "DELETE")
				form.Submit(h, "Delete", "bg-red-600")
				h.Raw("</form>")
			}
			h.Raw("</div>")
		})

		h.Component(layouts.Base(profile.FullName(), profileCrumbs(actor, profile.FullName(), ""), content))
	})
}

// ProfileFormData backs both the create and the edit form. Profile is nil
// when creating.
type ProfileFormData struct {
	Profile *model.Profile
	Input   validation.ProfileInput
	Errors  validation.Errors
}

// NewProfileFormData pre-fills the edit form from a stored profile.
func NewProfileFormData(p *model.Profile) ProfileFormData {
	gender := "0"
	if p.Gender {
		gender = "1"
	}
	return ProfileFormData{
		Profile: p,
		Input: validation.ProfileInput{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    gender,
			Birthdate: p.BirthdateString(),
		},
	}
}

func ProfileForm(data ProfileFormData) templ.Component {
	title := "Create your profile"
	action, method := "/profile", "POST"
	if data.Profile != nil {
		title = "Edit profile"
		action, method = "/profile/"+data.Profile.ID, "PATCH"
	}

	return ui.Func(func(h *ui.HTML) {
		actor := ctxkeys.User(h.Context())

		content := ui.Func(func(h *ui.HTML) {
			h.Raw(`<h2 class="mb-4 text-2xl font-bold">`)
			h.Text(title)
			h.Raw("</h2>")

			form.Open(h, action, method)
			h.Component(form.Field(form.FieldProps{
				Name: "first_name", Label: "First name", Value: data.Input.FirstName,
				Error: data.Errors["first_name"], MaxLength: validation.NameMaxLength,
			}))
			h.Component(form.Field(form.FieldProps{
				Name: "last_name", Label: "Last name", Value: data.Input.LastName,
				Error: data.Errors["last_name"], MaxLength: validation.NameMaxLength,
			}))
			h.Component(form.Field(form.FieldProps{
				Name: "gender", Label: "Gender", Value: data.Input.Gender,
				Error: data.Errors["gender"], Options: genderOptions,
			}))
			h.Component(form.Field(form.FieldProps{
				Name: "birthdate", Label: "Birthdate", Type: "date", Value: data.Input.Birthdate,
				Error: data.Errors["birthdate"],
			}))
			if data.Profile != nil {
				form.Submit(h, "Update", "")
			} else {
				form.Submit(h, "Create", "")
			}
			h.Raw("</form>")
		})

		var crumbs []layouts.Crumb
		if data.Profile != nil {
			crumbs = profileCrumbs(actor, data.Profile.FullName(), "/profile/"+data.Profile.ID)
			crumbs = append(crumbs, layouts.Crumb{Label: "Edit"})
		} else {
			crumbs = []layouts.Crumb{{Label: "Home", Href: "/"}, {Label: "Create profile"}}
		}

		h.Component(layouts.Base(title, crumbs, content))
	})
}

// profileCrumbs gives admins a trail through the profile list.
func profileCrumbs(actor *model.User, name, href string) []layouts.Crumb {
	crumbs := []layouts.Crumb{{Label: "Home", Href: "/"}}
	if policy.IsAdmin(actor) {
		crumbs = append(crumbs, layouts.Crumb{Label: "Profiles", Href: "/profile"})
	}
	return append(crumbs, layouts.Crumb{Label: name, Href: href})
}

func term(h *ui.HTML, label, value string) {
	h.Raw(`<dt class="font-medium">`)
	h.Text(label)
	h.Raw("</dt><dd>")
	h.Text(value)
	h.Raw("</dd>")
}
