package flash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAddWithoutBagIsNoop(t *testing.T) {
	ctx := context.Background()
	Success(ctx, "Congrats!", "You made your profile")

	if got := Messages(ctx); got != nil {
		t.Fatalf("expected no messages, got %v", got)
	}
}

func TestPersistSurvivesRedirect(t *testing.T) {
	first := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Overlay(r.Context(), "Attention!", "You deleted a profile")
		Persist(r.Context(), w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}))

	rec := httptest.NewRecorder()
	first.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profile/1", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName {
		t.Fatalf("expected one flash cookie, got %v", cookies)
	}

	var seen []Message
	second := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Messages(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	second.ServeHTTP(rec, req)

	if len(seen) != 1 {
		t.Fatalf("expected one message, got %v", seen)
	}
	if seen[0].Title != "Attention!" || seen[0].Variant != VariantError || !seen[0].Overlay {
		t.Fatalf("unexpected message: %+v", seen[0])
	}

	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected flash cookie to be cleared, got %v", cleared)
	}
}

func TestMessagesIncludesCurrentRequest(t *testing.T) {
	ctx := WithBag(context.Background(), &Bag{})
	Success(ctx, "Congrats", "You updated your profile")

	got := Messages(ctx)
	if len(got) != 1 || got[0].Variant != VariantSuccess {
		t.Fatalf("unexpected messages: %v", got)
	}
}

func TestGarbageCookieIgnored(t *testing.T) {
	var seen []Message
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Messages(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%not-base64"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if len(seen) != 0 {
		t.Fatalf("expected no messages, got %v", seen)
	}
}

func TestUnshownMessagesSurviveSecondRedirect(t *testing.T) {
	first := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Success(r.Context(), "Welcome!", "Your account is ready")
		Persist(r.Context(), w)
		http.Redirect(w, r, "/profile/determine", http.StatusSeeOther)
	}))
	second := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Persist(r.Context(), w)
		http.Redirect(w, r, "/profile/create", http.StatusSeeOther)
	}))
	var shown []Message
	third := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shown = Messages(r.Context())
		Persist(r.Context(), w)
	}))

	rec := httptest.NewRecorder()
	first.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", nil))
	cookie := lastFlashCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/profile/determine", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	second.ServeHTTP(rec, req)
	cookie = lastFlashCookie(t, rec)

	req = httptest.NewRequest(http.MethodGet, "/profile/create", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	third.ServeHTTP(rec, req)

	if len(shown) != 1 || shown[0].Title != "Welcome!" {
		t.Fatalf("expected the welcome message after two redirects, got %v", shown)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge > 0 {
			t.Fatal("shown message was persisted again")
		}
	}
}

func lastFlashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			found = c
		}
	}
	if found == nil || found.Value == "" {
		t.Fatal("expected a flash cookie")
	}
	return found
}
