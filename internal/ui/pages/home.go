package pages

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/layouts"
)

func Home() templ.Component {
	content := ui.Func(func(h *ui.HTML) {
		user := ctxkeys.User(h.Context())

		h.Raw(`<section class="py-12 text-center">`)
		h.Raw(`<h1 class="mb-4 text-3xl font-bold">Welcome</h1>`)
		if user == nil {
			h.Raw(`<p class="mb-6 text-gray-600">Sign in to create and manage your profile.</p>`)
			h.Raw(`<a href="/auth" class="rounded-md bg-blue-600 px-4 py-2 text-white">Get started</a>`)
		} else {
			h.Raw(`<p class="mb-6 text-gray-600">Signed in as `)
			h.Text(user.DisplayName())
			h.Raw(".</p>")
			h.Raw(`<a href="/profile/determine" class="rounded-md bg-blue-600 px-4 py-2 text-white">Go to my profile</a>`)
		}
		h.Raw("</section>")
	})

	return layouts.Base("Home", nil, content)
}

// ErrorPage is shown for 403 and 404 responses. The message never says who
// owns the resource.
func ErrorPage(status int, title, message string) templ.Component {
	content := ui.Func(func(h *ui.HTML) {
		h.Raw(`<section class="py-12 text-center"><p class="text-5xl font-bold text-gray-400">`)
		h.Text(strconv.Itoa(status))
		h.Raw(`</p><h1 class="my-4 text-2xl font-bold">`)
		h.Text(title)
		h.Raw(`</h1><p class="mb-6 text-gray-600">`)
		h.Text(message)
		h.Raw(`</p><a href="/" class="underline">Back home</a></section>`)
	})

	return layouts.Base(title, nil, content)
}

func NotFound() templ.Component {
	return ErrorPage(404, "Page not found", "The page you are looking for does not exist.")
}

func Forbidden() templ.Component {
	return ErrorPage(403, "Forbidden", "You are not allowed to do that.")
}
