package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/model"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/components/form"
	"github.com/templui/profiles/internal/ui/layouts"
	"github.com/templui/profiles/internal/validation"
)

var adminOptions = []form.Option{
	{Value: "1", Label: "Yes"},
	{Value: "0", Label: "No"},
}

// UserEdit is the admin form for another account's name and admin flag.
func UserEdit(user *model.User, errs validation.Errors) templ.Component {
	isAdmin := "0"
	if user.IsAdmin {
		isAdmin = "1"
	}

	content := ui.Func(func(h *ui.HTML) {
		h.Raw(`<h2 class="mb-4 text-2xl font-bold">Edit user</h2><p class="mb-4 text-sm text-gray-600">`)
		h.Text(user.Email)
		h.Raw("</p>")

		form.Open(h, "/user/"+user.ID, "PATCH")
		h.Component(form.Field(form.FieldProps{
			Name: "name", Label: "Name", Value: user.Name, Error: errs["name"],
		}))
		h.Component(form.Field(form.FieldProps{
			Name: "is_admin", Label: "Administrator", Value: isAdmin, Error: errs["is_admin"], Options: adminOptions,
		}))
		form.Submit(h, "Save", "")
		h.Raw("</form>")
	})

	crumbs := []layouts.Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Profiles", Href: "/profile"},
		{Label: user.DisplayName()},
	}
	return layouts.Base("Edit user", crumbs, content)
}
