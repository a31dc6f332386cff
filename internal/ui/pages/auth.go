package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/components/form"
	"github.com/templui/profiles/internal/ui/layouts"
	"github.com/templui/profiles/internal/validation"
)

// AuthData carries the previous submission back into the sign-in page.
type AuthData struct {
	LoginEmail string
	LoginError string

	Register       validation.RegistrationInput
	RegisterErrors validation.Errors
}

func Auth(data AuthData) templ.Component {
	return ui.Func(func(h *ui.HTML) {
		registrationOpen := true
		if cfg := ctxkeys.Config(h.Context()); cfg != nil {
			registrationOpen = cfg.RegistrationOpen
		}

		content := ui.Func(func(h *ui.HTML) {
			h.Raw(`<div class="grid gap-8 md:grid-cols-2">`)

			h.Raw(`<section><h2 class="mb-4 text-xl font-bold">Sign in</h2>`)
			if data.LoginError != "" {
				h.Raw(`<p class="mb-4 text-sm text-red-600" role="alert">`)
				h.Text(data.LoginError)
				h.Raw("</p>")
			}
			form.Open(h, "/auth/login", "POST")
			h.Component(form.Field(form.FieldProps{Name: "email", Label: "Email", Type: "email", Value: data.LoginEmail}))
			h.Component(form.Field(form.FieldProps{Name: "password", Label: "Password", Type: "password"}))
			form.Submit(h, "Sign in", "")
			h.Raw("</form></section>")

			if registrationOpen {
				h.Raw(`<section><h2 class="mb-4 text-xl font-bold">Create an account</h2>`)
				form.Open(h, "/auth/register", "POST")
				h.Component(form.Field(form.FieldProps{
					Name: "name", Label: "Name", Value: data.Register.Name, Error: data.RegisterErrors["name"],
				}))
				h.Component(form.Field(form.FieldProps{
					Name: "email", Label: "Email", Type: "email", Value: data.Register.Email, Error: data.RegisterErrors["email"],
				}))
				h.Component(form.Field(form.FieldProps{
					Name: "password", Label: "Password", Type: "password", Error: data.RegisterErrors["password"],
				}))
				form.Submit(h, "Register", "")
				h.Raw("</form></section>")
			}

			h.Raw("</div>")
		})

		h.Component(layouts.Base("Sign in", nil, content))
	})
}
