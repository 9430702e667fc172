// Package bible fetches verse text for scripture references. It offers
// two interchangeable providers behind one interface: a live provider
// backed by the verse API and an offline mock provider, so callers
// never know which is active.
package bible

import (
	"context"

	"github.com/truthseed/truthseed/internal/model"
)

// Provider defines the interface for verse providers. FetchVerse
// returns exactly one of a verse or a *model.VerseError per attempt.
type Provider interface {
	// Name returns the provider name for diagnostics
	Name() string

	// FetchVerse fetches verse text for a reference
	FetchVerse(ctx context.Context, ref model.Reference) (*model.Verse, error)

	// IsConfigured reports whether required configuration is present
	IsConfigured() bool
}
