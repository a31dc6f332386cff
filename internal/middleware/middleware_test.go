package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/templui/profiles/internal/ctxkeys"
	"github.com/templui/profiles/internal/model"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestMethodOverride(t *testing.T) {
	var gotMethod string
	h := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))

	tests := []struct {
		name   string
		method string
		form   string
		want   string
	}{
		{"patch via form", http.MethodPost, "_method=patch", http.MethodPatch},
		{"delete via form", http.MethodPost, "_method=DELETE", http.MethodDelete},
		{"unknown override ignored", http.MethodPost, "_method=trace", http.MethodPost},
		{"plain post", http.MethodPost, "first_name=Jane", http.MethodPost},
		{"get is never rewritten", http.MethodGet, "", http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/profile/1", strings.NewReader(tt.form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			h.ServeHTTP(httptest.NewRecorder(), req)
			if gotMethod != tt.want {
				t.Fatalf("method = %s, want %s", gotMethod, tt.want)
			}
		})
	}
}

func TestCSRFProtection(t *testing.T) {
	h := CSRFProtection(http.HandlerFunc(okHandler))

	// GET issues a token cookie
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != csrfCookieName {
		t.Fatalf("expected csrf cookie, got %v", cookies)
	}
	token := cookies[0].Value

	post := func(formToken string) int {
		form := url.Values{"csrf_token": {formToken}}
		req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookies[0])
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post(""); code != http.StatusForbidden {
		t.Fatalf("missing token: got %d, want 403", code)
	}
	if code := post("wrong"); code != http.StatusForbidden {
		t.Fatalf("wrong token: got %d, want 403", code)
	}
	if code := post(token); code != http.StatusNoContent {
		t.Fatalf("valid token: got %d, want 204", code)
	}
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(okHandler)

	tests := []struct {
		name string
		user *model.User
		want int
	}{
		{"guest", nil, http.StatusSeeOther},
		{"user", &model.User{ID: "u1"}, http.StatusForbidden},
		{"admin", &model.User{ID: "u2", IsAdmin: true}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.user != nil {
				req = req.WithContext(ctxkeys.WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			h(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireAdminRendersForbiddenPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "u1"}))
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler)(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q, want html", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Forbidden") || !strings.Contains(body, "You are not allowed to do that.") {
		t.Fatalf("expected the forbidden page, got %q", body)
	}
}

func TestRequireAuthHTMXRedirect(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile/mine", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	RequireAuth(okHandler)(rec, req)

	if rec.Header().Get("HX-Redirect") != "/auth" {
		t.Fatalf("expected HX-Redirect to /auth, got %q", rec.Header().Get("HX-Redirect"))
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	if !rl.Allow("1.2.3.4") || !rl.Allow("1.2.3.4") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("third request should be limited")
	}
	if !rl.Allow("5.6.7.8") {
		t.Fatal("other IPs have their own bucket")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	if got := clientIP(req); got != "10.0.0.1" {
		t.Fatalf("got %s", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Fatalf("got %s", got)
	}
}
