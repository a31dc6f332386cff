package layouts

import (
	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/ui"
	"github.com/templui/profiles/internal/ui/components/form"
	"github.com/templui/profiles/internal/ui/components/toast"
)

// Crumb is one breadcrumb entry. The last crumb is rendered without a link.
type Crumb struct {
	Label string
	Href  string
}

// Base wraps page content with the document shell, navigation and any
// pending flash notifications.
func Base(title string, crumbs []Crumb, content templ.Component) templ.Component {
	return ui.Func(func(h *ui.HTML) {
		ctx := h.Context()
		appName := "Profiles"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}

		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<meta name="csrf-token"`)
		h.Attr("content", ctxkeys.CSRFToken(ctx))
		h.Raw("><title>")
		h.Text(title + " | " + appName)
		h.Raw("</title></head><body class=\"min-h-screen bg-gray-50\">")

		nav(h, appName)

		h.Raw(`<main class="mx-auto max-w-3xl p-6">`)
		h.Raw(`<div id="toast-container" class="mb-4 space-y-2">`)
		for _, msg := range flash.Messages(ctx) {
			h.Component(toast.Toast(toast.FromFlash(msg)))
		}
		h.Raw("</div>")

		breadcrumbs(h, crumbs)
		h.Component(content)
		h.Raw("</main>")

		h.Raw(`<script`)
		h.Attr("nonce", templ.GetNonce(ctx))
		h.Raw(`>document.addEventListener("click",function(e){if(e.target.dataset.dismiss==="toast"){e.target.closest("[role=alert]").remove()}});</script>`)
		h.Raw("</body></html>")
	})
}

func nav(h *ui.HTML, appName string) {
	user := ctxkeys.User(h.Context())

	h.Raw(`<nav class="flex items-center gap-4 border-b bg-white px-6 py-3"><a href="/" class="font-bold">`)
	h.Text(appName)
	h.Raw("</a>")

	if user == nil {
		h.Raw(`<a href="/auth" class="ml-auto">Sign in</a></nav>`)
		return
	}

	h.Raw(`<a href="/profile/determine">My profile</a>`)
	if user.IsAdmin {
		h.Raw(`<a href="/profile">All profiles</a>`)
	}
	h.Raw(`<span class="ml-auto text-sm text-gray-600">`)
	h.Text(user.DisplayName())
	h.Raw("</span>")

	form.Open(h, "/auth/logout", "POST")
	form.Submit(h, "Sign out", "bg-gray-200 px-2 py-1 text-sm text-gray-900")
	h.Raw("</form></nav>")
}

func breadcrumbs(h *ui.HTML, crumbs []Crumb) {
	if len(crumbs) == 0 {
		return
	}
	h.Raw(`<ol class="breadcrumb mb-4 flex gap-2 text-sm text-gray-600">`)
	for i, c := range crumbs {
		h.Raw("<li>")
		if i < len(crumbs)-1 && c.Href != "" {
			h.Raw("<a")
			h.Attr("href", c.Href)
			h.Raw(">")
			h.Text(c.Label)
			h.Raw("</a>")
		} else {
			h.Text(c.Label)
		}
		h.Raw("</li>")
	}
	h.Raw("</ol>")
}
