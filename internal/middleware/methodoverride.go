package middleware

import (
	"net/http"
	"strings"
)

const (
	methodOverrideField  = "_method"
	methodOverrideHeader = "X-HTTP-Method-Override"
)

var overridableMethods = map[string]string{
	"put":    http.MethodPut,
	"patch":  http.MethodPatch,
	"delete": http.MethodDelete,
}

// MethodOverride lets HTML forms reach PATCH and DELETE routes by posting a
// hidden _method field. Only POST requests are rewritten. Must run before
// routing.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.Header.Get(methodOverrideHeader)
			if override == "" {
				override = r.PostFormValue(methodOverrideField)
			}
			if method, ok := overridableMethods[strings.ToLower(strings.TrimSpace(override))]; ok {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
