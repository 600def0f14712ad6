package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
)

// DocumentStore is the minimal interface the service requires from the
// document backend.
type DocumentStore interface {
	GetDocument(ctx context.Context, key string) (io.ReadCloser, error)
	PutDocument(ctx context.Context, key string, body []byte) error
}

// EventPublisher fans out content-change notifications to downstream caches.
type EventPublisher interface {
	PublishContentUpdate(ctx context.Context, slug string) error
}

type Service interface {
	GetPage(ctx context.Context, slug string) (*domain.Page, error)
	// Publish stores the optional replacement document, drops the cached
	// copy, and notifies downstream consumers.
	Publish(ctx context.Context, slug string, doc *domain.Page) error
}

type service struct {
	docs   DocumentStore
	events EventPublisher // nil when no topic is configured

	mu    sync.RWMutex
	cache map[string]*domain.Page
}

func NewService(docs DocumentStore, events EventPublisher) Service {
	return &service{
		docs:   docs,
		events: events,
		cache:  make(map[string]*domain.Page),
	}
}

func (s *service) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	s.mu.RLock()
	page, ok := s.cache[slug]
	s.mu.RUnlock()
	if ok {
		return page, nil
	}

	body, err := s.docs.GetDocument(ctx, documentKey(slug))
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", slug, domain.ErrNotFound)
	}
	defer body.Close()

	page = &domain.Page{}
	if err := json.NewDecoder(body).Decode(page); err != nil {
		return nil, fmt.Errorf("decode page %q: %w", slug, err)
	}
	if page.Slug == "" {
		page.Slug = slug
	}

	s.mu.Lock()
	s.cache[slug] = page
	s.mu.Unlock()
	return page, nil
}

func (s *service) Publish(ctx context.Context, slug string, doc *domain.Page) error {
	if slug == "" {
		return fmt.Errorf("publish: %w", errors.New("slug required"))
	}
	if doc != nil {
		doc.Slug = slug
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal page %q: %w", slug, err)
		}
		if err := s.docs.PutDocument(ctx, documentKey(slug), raw); err != nil {
			return fmt.Errorf("store page %q: %w", slug, err)
		}
	}

	s.mu.Lock()
	delete(s.cache, slug)
	s.mu.Unlock()

	// Fan-out is best-effort: the local cache is already invalidated.
	if s.events != nil {
		if err := s.events.PublishContentUpdate(ctx, slug); err != nil {
			slog.Warn("could not publish content update", "slug", slug, "err", err)
		}
	}
	return nil
}

func documentKey(slug string) string {
	return "pages/" + slug + ".json"
}
