package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
)

// cookieStore is the time-bounded half of the decision store: one cookie
// per key, path "/", SameSite=Lax, expiring the configured number of whole
// days after writing. Zero days yields a session cookie.
type cookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

func (s cookieStore) Get(_ context.Context, key string) (string, error) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", fmt.Errorf("cookie %q: %w", key, domain.ErrNotFound)
	}
	return c.Value, nil
}

func (s cookieStore) Set(_ context.Context, key, value string, days int) error {
	c := &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	if days > 0 {
		c.Expires = time.Now().Add(time.Duration(days) * 24 * time.Hour)
	}
	http.SetCookie(s.w, c)
	return nil
}
