package middleware

import (
	"context"
	"net/http"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/pkg/id"
)

const visitorCookieName = "visitor_id"

const visitorKey contextKey = "visitor"

// Visitor assigns each user agent a stable ULID on first contact, carried in
// a long-lived cookie, and injects it into the request context. The durable
// half of the decision store is keyed by this ID.
func Visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := ""
		if c, err := r.Cookie(visitorCookieName); err == nil && c.Value != "" {
			visitorID = c.Value
		} else {
			visitorID = id.New()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookieName,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), visitorKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VisitorFromContext extracts the visitor ID from the request context.
func VisitorFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(visitorKey).(string)
	return v, ok && v != ""
}
