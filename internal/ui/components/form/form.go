// Package form renders the inputs shared by the profile and account forms.
package form

import (
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/ui"
)

type Option struct {
	Value string
	Label string
}

type FieldProps struct {
	Name      string
	Label     string
	Type      string
	Value     string
	Error     string
	MaxLength int
	Options   []Option
}

// Field renders a labelled input or select with its inline error.
func Field(p FieldProps) templ.Component {
	groupClass := "mb-4"
	inputClass := "block w-full rounded-md border border-gray-300 px-3 py-2"
	if p.Error != "" {
		groupClass = twmerge.Merge(groupClass, "has-error")
		inputClass = twmerge.Merge(inputClass, "border-red-500")
	}

	return ui.Func(func(h *ui.HTML) {
		h.Raw("<div")
		h.Attr("class", groupClass)
		h.Raw(`><label class="mb-1 block text-sm font-medium"`)
		h.Attr("for", p.Name)
		h.Raw(">")
		h.Text(p.Label)
		h.Raw("</label>")

		if len(p.Options) > 0 {
			h.Raw("<select")
			h.Attr("id", p.Name)
			h.Attr("name", p.Name)
			h.Attr("class", inputClass)
			h.Raw(">")
			for _, opt := range p.Options {
				h.Raw("<option")
				h.Attr("value", opt.Value)
				if opt.Value == p.Value {
					h.Raw(" selected")
				}
				h.Raw(">")
				h.Text(opt.Label)
				h.Raw("</option>")
			}
			h.Raw("</select>")
		} else {
			inputType := p.Type
			if inputType == "" {
				inputType = "text"
			}
			h.Raw("<input")
			h.Attr("type", inputType)
			h.Attr("id", p.Name)
			h.Attr("name", p.Name)
			h.Attr("value", p.Value)
			h.Attr("class", inputClass)
			if p.MaxLength > 0 {
				h.Attr("maxlength", strconv.Itoa(p.MaxLength))
			}
			h.Raw(">")
		}

		if p.Error != "" {
			h.Raw(`<span class="help-block text-sm text-red-600"><strong>`)
			h.Text(p.Error)
			h.Raw("</strong></span>")
		}
		h.Raw("</div>")
	})
}

// Open starts a form posting to action. method may be PATCH or DELETE, in
// which case a hidden _method field carries it. The CSRF token is included.
func Open(h *ui.HTML, action, method string) {
	h.Raw(`<form method="post"`)
	h.Attr("action", action)
	h.Raw(">")
	if method != "" && method != "POST" {
		h.Raw(`<input type="hidden" name="_method"`)
		h.Attr("value", method)
		h.Raw(">")
	}
	CSRF(h)
}

func CSRF(h *ui.HTML) {
	h.Raw(`<input type="hidden" name="csrf_token"`)
	h.Attr("value", ctxkeys.CSRFToken(h.Context()))
	h.Raw(">")
}

func Submit(h *ui.HTML, label, class string) {
	h.Raw(`<button type="submit"`)
	h.Attr("class", twmerge.Merge("rounded-md bg-blue-600 px-4 py-2 text-white", class))
	h.Raw(">")
	h.Text(label)
	h.Raw("</button>")
}
