// Package flash carries one-shot notifications across a redirect.
//
// Messages added during a request are either rendered by that same response
// or, when the handler redirects, written to a short-lived cookie and shown
// by the next page.
package flash

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
)

const cookieName = "flash"

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

type Message struct {
	Title       string  `json:"t"`
	Description string  `json:"d"`
	Variant     Variant `json:"v"`
	// Overlay messages are modal and must be dismissed.
	Overlay bool `json:"o,omitempty"`
}

// Bag holds the messages of a single request.
type Bag struct {
	mu       sync.Mutex
	incoming []Message
	outgoing []Message
	// shown is set once a page has rendered the incoming messages.
	shown bool
}

type bagKey struct{}

func WithBag(ctx context.Context, bag *Bag) context.Context {
	return context.WithValue(ctx, bagKey{}, bag)
}

func FromContext(ctx context.Context) *Bag {
	bag, _ := ctx.Value(bagKey{}).(*Bag)
	return bag
}

// Add queues a message. Without a bag in ctx it is dropped.
func Add(ctx context.Context, msg Message) {
	bag := FromContext(ctx)
	if bag == nil {
		return
	}
	bag.mu.Lock()
	bag.outgoing = append(bag.outgoing, msg)
	bag.mu.Unlock()
}

func Success(ctx context.Context, title, description string) {
	Add(ctx, Message{Title: title, Description: description, Variant: VariantSuccess})
}

// Overlay queues an error-styled modal notice.
func Overlay(ctx context.Context, title, description string) {
	Add(ctx, Message{Title: title, Description: description, Variant: VariantError, Overlay: true})
}

// Messages returns everything to show on the page being rendered: messages
// carried in from the previous request followed by those added in this one.
func Messages(ctx context.Context) []Message {
	bag := FromContext(ctx)
	if bag == nil {
		return nil
	}
	bag.mu.Lock()
	defer bag.mu.Unlock()
	bag.shown = true

	out := make([]Message, 0, len(bag.incoming)+len(bag.outgoing))
	out = append(out, bag.incoming...)
	return append(out, bag.outgoing...)
}

// Persist writes this request's messages to the flash cookie. Messages carried
// in that no page has shown yet travel on, so a chain of redirects keeps them.
// Call it before redirecting; headers cannot change afterwards.
func Persist(ctx context.Context, w http.ResponseWriter) {
	bag := FromContext(ctx)
	if bag == nil {
		return
	}
	bag.mu.Lock()
	var pending []Message
	if !bag.shown {
		pending = append(pending, bag.incoming...)
		bag.incoming = nil
	}
	pending = append(pending, bag.outgoing...)
	bag.outgoing = nil
	bag.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	raw, err := json.Marshal(pending)
	if err != nil {
		slog.Error("failed to encode flash messages", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// Middleware loads messages left by the previous request and clears the cookie.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bag := &Bag{}

		cookie, err := r.Cookie(cookieName)
		if err == nil && cookie.Value != "" {
			bag.incoming = decode(cookie.Value)
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    "",
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   -1,
			})
		}

		next.ServeHTTP(w, r.WithContext(WithBag(r.Context(), bag)))
	})
}

func decode(value string) []Message {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var messages []Message
	err = json.Unmarshal(raw, &messages)
	if err != nil {
		return nil
	}
	return messages
}
