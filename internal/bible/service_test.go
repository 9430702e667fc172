package bible

import (
	"context"
	"sync"
	"testing"

	"github.com/truthseed/truthseed/internal/model"
)

// countingProvider is a test double that records fetch attempts
type countingProvider struct {
	mu    sync.Mutex
	calls int
	verse *model.Verse
	err   error
}

func (p *countingProvider) Name() string       { return "counting" }
func (p *countingProvider) IsConfigured() bool { return true }

func (p *countingProvider) FetchVerse(_ context.Context, ref model.Reference) (*model.Verse, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	v := *p.verse
	v.Reference = ref
	return &v, nil
}

// mapCache is an in-memory cache double
type mapCache struct {
	entries map[string]string
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[string]string)} }

func (c *mapCache) Get(key string) (string, bool) {
	text, ok := c.entries[key]
	return text, ok
}
func (c *mapCache) Set(key, text string) error { c.entries[key] = text; return nil }
func (c *mapCache) Delete(key string) error    { delete(c.entries, key); return nil }
func (c *mapCache) Clear() error               { c.entries = make(map[string]string); return nil }

func testRef() model.Reference {
	return model.Reference{
		Book:        "Juan",
		Chapter:     1,
		VerseStart:  12,
		Display:     "Juan 1:12",
		Translation: "rv1960",
	}
}

func TestServiceLookup_CacheHitSkipsProvider(t *testing.T) {
	provider := &countingProvider{verse: &model.Verse{Text: "fresco", Translation: "rv1960"}}
	store := newMapCache()
	service := NewServiceWith(provider, NewMockProvider(), store, "rv1960")

	first, err := service.Lookup(context.Background(), testRef())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	second, err := service.Lookup(context.Background(), testRef())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("cache returned different text: %q != %q", second.Text, first.Text)
	}
	if provider.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.calls)
	}
}

func TestServiceLookup_FallsBackToMock(t *testing.T) {
	failing := &countingProvider{err: model.NewVerseError(testRef(), "upstream down")}
	service := NewServiceWith(failing, NewMockProvider(), nil, "rv1960")

	verse, err := service.Lookup(context.Background(), testRef())
	if err != nil {
		t.Fatalf("expected mock fallback to answer, got %v", err)
	}
	if verse.Text == "" {
		t.Error("expected mock verse text")
	}
	if failing.calls != 1 {
		t.Errorf("expected 1 primary attempt, got %d", failing.calls)
	}
}

func TestServiceLookup_BothProvidersFail(t *testing.T) {
	ref := testRef()
	ref.Book = "Atlantis"
	ref.Display = "Atlantis 1:12"

	failing := &countingProvider{err: model.NewVerseError(ref, "upstream down")}
	service := NewServiceWith(failing, NewMockProvider(), nil, "rv1960")

	if _, err := service.Lookup(context.Background(), ref); err == nil {
		t.Fatal("expected an error when both providers fail")
	}
}

func TestServiceLookup_WritesBackToCache(t *testing.T) {
	provider := &countingProvider{verse: &model.Verse{Text: "texto", Translation: "rv1960"}}
	store := newMapCache()
	service := NewServiceWith(provider, NewMockProvider(), store, "rv1960")

	if _, err := service.Lookup(context.Background(), testRef()); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(store.entries) != 1 {
		t.Errorf("expected 1 cache entry, got %d", len(store.entries))
	}
}

func TestServiceLookup_DefaultTranslationApplied(t *testing.T) {
	provider := &countingProvider{verse: &model.Verse{Text: "texto", Translation: "nvi"}}
	service := NewServiceWith(provider, NewMockProvider(), nil, "nvi")

	ref := testRef()
	ref.Translation = ""

	verse, err := service.Lookup(context.Background(), ref)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if verse.Reference.Translation != "nvi" {
		t.Errorf("expected default translation nvi, got %q", verse.Reference.Translation)
	}
}

func TestMockProvider_KnownReference(t *testing.T) {
	mock := NewMockProvider()

	verse, err := mock.FetchVerse(context.Background(), testRef())
	if err != nil {
		t.Fatalf("FetchVerse: %v", err)
	}
	if verse.Text == "" {
		t.Error("expected canned text")
	}
}

func TestMockProvider_IgnoresTranslation(t *testing.T) {
	mock := NewMockProvider()

	ref := testRef()
	ref.Translation = "kjv"

	verse, err := mock.FetchVerse(context.Background(), ref)
	if err != nil {
		t.Fatalf("FetchVerse: %v", err)
	}
	if verse.Translation != "kjv" {
		t.Errorf("mock must echo the requested translation, got %q", verse.Translation)
	}
}

func TestMockProvider_UnknownReference(t *testing.T) {
	mock := NewMockProvider()

	ref := model.Reference{Book: "Judas", Chapter: 1, VerseStart: 24, Display: "Judas 1:24", Translation: "rv1960"}
	if _, err := mock.FetchVerse(context.Background(), ref); err == nil {
		t.Fatal("expected mock verse not found")
	}
}

func TestNewProvider_SelectsByConfiguration(t *testing.T) {
	live := NewProvider(model.BibleConfig{BaseURL: "https://example.test/api"})
	if !live.IsConfigured() {
		t.Error("live provider should report configured")
	}
	if live.Name() != "bible-api" {
		t.Errorf("expected bible-api, got %s", live.Name())
	}

	fallback := NewProvider(model.BibleConfig{})
	if fallback.Name() != "mock" {
		t.Errorf("expected mock without base URL, got %s", fallback.Name())
	}
	if !fallback.IsConfigured() {
		t.Error("mock provider is always configured")
	}
}
