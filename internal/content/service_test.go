package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeDocStore struct {
	docs map[string][]byte
	gets int
}

func newFakeDocStore() *fakeDocStore { return &fakeDocStore{docs: map[string][]byte{}} }

func (f *fakeDocStore) GetDocument(_ context.Context, key string) (io.ReadCloser, error) {
	f.gets++
	raw, ok := f.docs[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}

func (f *fakeDocStore) PutDocument(_ context.Context, key string, body []byte) error {
	f.docs[key] = body
	return nil
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishContentUpdate(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

// --- tests ---

func TestGetPage_FetchesAndDecodes(t *testing.T) {
	docs := newFakeDocStore()
	docs.docs["pages/whisky.json"] = []byte(`{"title":"Whisky","blocks":[{"type":"age-gate"}]}`)
	svc := NewService(docs, nil)

	page, err := svc.GetPage(context.Background(), "whisky")
	require.NoError(t, err)
	assert.Equal(t, "whisky", page.Slug)
	assert.Equal(t, "Whisky", page.Title)
	require.NotNil(t, page.AgeGateBlock())
}

func TestGetPage_SecondCall_ServedFromCache(t *testing.T) {
	docs := newFakeDocStore()
	docs.docs["pages/home.json"] = []byte(`{"title":"Home","blocks":[]}`)
	svc := NewService(docs, nil)

	_, err := svc.GetPage(context.Background(), "home")
	require.NoError(t, err)
	_, err = svc.GetPage(context.Background(), "home")
	require.NoError(t, err)

	assert.Equal(t, 1, docs.gets)
}

func TestGetPage_Missing_ReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeDocStore(), nil)

	_, err := svc.GetPage(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublish_StoresDocumentAndInvalidatesCache(t *testing.T) {
	docs := newFakeDocStore()
	docs.docs["pages/home.json"] = []byte(`{"title":"Old","blocks":[]}`)
	svc := NewService(docs, nil)

	old, err := svc.GetPage(context.Background(), "home")
	require.NoError(t, err)
	require.Equal(t, "Old", old.Title)

	err = svc.Publish(context.Background(), "home", &domain.Page{Title: "New"})
	require.NoError(t, err)

	fresh, err := svc.GetPage(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "New", fresh.Title)
}

func TestPublish_WithoutDocument_OnlyInvalidates(t *testing.T) {
	docs := newFakeDocStore()
	docs.docs["pages/home.json"] = []byte(`{"title":"V1","blocks":[]}`)
	svc := NewService(docs, nil)

	_, err := svc.GetPage(context.Background(), "home")
	require.NoError(t, err)

	docs.docs["pages/home.json"] = []byte(`{"title":"V2","blocks":[]}`)
	require.NoError(t, svc.Publish(context.Background(), "home", nil))

	fresh, err := svc.GetPage(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "V2", fresh.Title)
}

func TestPublish_NotifiesDownstream(t *testing.T) {
	docs := newFakeDocStore()
	pub := &mockPublisher{}
	pub.On("PublishContentUpdate", mock.Anything, "home").Return(nil)
	svc := NewService(docs, pub)

	err := svc.Publish(context.Background(), "home", &domain.Page{Title: "Home"})
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestPublish_FanOutFailure_IsSwallowed(t *testing.T) {
	docs := newFakeDocStore()
	pub := &mockPublisher{}
	pub.On("PublishContentUpdate", mock.Anything, "home").Return(errors.New("sns down"))
	svc := NewService(docs, pub)

	err := svc.Publish(context.Background(), "home", &domain.Page{Title: "Home"})
	assert.NoError(t, err)
}

func TestPublish_EmptySlug_Rejected(t *testing.T) {
	svc := NewService(newFakeDocStore(), nil)
	err := svc.Publish(context.Background(), "", nil)
	assert.Error(t, err)
}
