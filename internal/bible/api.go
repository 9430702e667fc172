package bible

import (
	"context"

	"github.com/truthseed/truthseed/internal/model"
)

// APIProvider fetches verses from the live verse API. The API is free
// and unauthenticated, so configuration amounts to a base URL.
type APIProvider struct {
	client     *Client
	configured bool
}

// NewAPIProvider creates a live provider from configuration
func NewAPIProvider(cfg model.BibleConfig) *APIProvider {
	return &APIProvider{
		client:     NewClient(cfg),
		configured: cfg.BaseURL != "",
	}
}

// Name returns the provider name
func (p *APIProvider) Name() string {
	return "bible-api"
}

// IsConfigured reports whether the API base URL is set
func (p *APIProvider) IsConfigured() bool {
	return p.configured
}

// FetchVerse fetches verse text from the verse API
func (p *APIProvider) FetchVerse(ctx context.Context, ref model.Reference) (*model.Verse, error) {
	data := p.client.FetchVerse(ctx, ref)
	if data == nil {
		return nil, model.NewVerseError(ref, "verse lookup failed")
	}
	return &model.Verse{
		Text:        data.Text,
		Reference:   ref,
		Translation: data.Translation,
	}, nil
}
