package toast

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/ui"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

type Props struct {
	Title       string
	Description string
	Variant     Variant
	Dismissible bool
	// Overlay renders a modal that blocks the page until dismissed.
	Overlay bool
	Class   string
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-200 bg-white text-gray-900",
	VariantSuccess: "border-green-300 bg-green-50 text-green-900",
	VariantError:   "border-red-300 bg-red-50 text-red-900",
	VariantInfo:    "border-blue-300 bg-blue-50 text-blue-900",
}

func Toast(p Props) templ.Component {
	variant := p.Variant
	if _, ok := variantClasses[variant]; !ok {
		variant = VariantDefault
	}
	classes := twmerge.Merge("rounded-md border p-4 shadow-sm", variantClasses[variant], p.Class)
	if p.Overlay {
		classes = twmerge.Merge(classes, "fixed inset-x-0 top-1/3 mx-auto max-w-md shadow-lg")
	}

	return ui.Func(func(h *ui.HTML) {
		h.Raw(`<div role="alert"`)
		h.Attr("class", classes)
		h.Attr("data-variant", string(variant))
		h.Raw(">")
		if p.Title != "" {
			h.Raw(`<p class="font-semibold">`)
			h.Text(p.Title)
			h.Raw("</p>")
		}
		if p.Description != "" {
			h.Raw(`<p class="text-sm">`)
			h.Text(p.Description)
			h.Raw("</p>")
		}
		if p.Dismissible || p.Overlay {
			h.Raw(`<button type="button" class="mt-2 text-xs underline" data-dismiss="toast">Dismiss</button>`)
		}
		h.Raw("</div>")
	})
}

// FromFlash maps a flash message onto toast props.
func FromFlash(m flash.Message) Props {
	variant := VariantDefault
	switch m.Variant {
	case flash.VariantSuccess:
		variant = VariantSuccess
	case flash.VariantError:
		variant = VariantError
	case flash.VariantInfo:
		variant = VariantInfo
	}
	return Props{
		Title:       m.Title,
		Description: m.Description,
		Variant:     variant,
		Dismissible: true,
		Overlay:     m.Overlay,
	}
}
