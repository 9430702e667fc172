package bible

import (
	"context"
	"fmt"
	"os"

	"github.com/truthseed/truthseed/internal/cache"
	"github.com/truthseed/truthseed/internal/model"
)

// Service ties a provider to the verse cache and the mock fallback.
// Lookup order: cache, then the configured provider, then the mock as
// a last resort for that single request. Constructed once at startup
// and reused for the process lifetime.
type Service struct {
	provider    Provider
	fallback    Provider
	cache       cache.Cache
	translation string
	verbose     bool
}

// NewService builds the verse lookup service from configuration
func NewService(cfg model.Config) *Service {
	var store cache.Cache = cache.Disabled{}
	if cfg.Cache.Enabled {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Service{
		provider:    NewProvider(cfg.Bible),
		fallback:    NewMockProvider(),
		cache:       store,
		translation: cfg.Bible.DefaultTranslation,
		verbose:     cfg.Verbose,
	}
}

// NewServiceWith builds a service from explicit parts (used in tests)
func NewServiceWith(provider, fallback Provider, store cache.Cache, defaultTranslation string) *Service {
	if store == nil {
		store = cache.Disabled{}
	}
	return &Service{
		provider:    provider,
		fallback:    fallback,
		cache:       store,
		translation: defaultTranslation,
	}
}

// ProviderName reports which provider is active, for diagnostics
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Lookup resolves verse text for a reference. Cache hits skip the
// network entirely; successful fetches are written back to the cache.
// Cache failures never surface: the system proceeds as though the
// cache were empty.
func (s *Service) Lookup(ctx context.Context, ref model.Reference) (*model.Verse, error) {
	if ref.Translation == "" {
		ref.Translation = s.translation
	}

	key := cache.Key(ref.CacheKey())
	if text, ok := s.cache.Get(key); ok {
		if s.verbose {
			fmt.Fprintf(os.Stderr, "[bible] cache hit for %s\n", ref.Display)
		}
		return &model.Verse{Text: text, Reference: ref, Translation: ref.Translation}, nil
	}

	verse, err := s.provider.FetchVerse(ctx, ref)
	if err != nil {
		// Last-resort fallback for this single request
		verse, err = s.fallback.FetchVerse(ctx, ref)
	}
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(key, verse.Text); cacheErr != nil && s.verbose {
		fmt.Fprintf(os.Stderr, "[bible] cache write failed: %v\n", cacheErr)
	}
	return verse, nil
}

// ClearCache empties the verse cache
func (s *Service) ClearCache() error {
	return s.cache.Clear()
}
