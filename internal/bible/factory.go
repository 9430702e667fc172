package bible

import (
	"fmt"
	"os"

	"github.com/truthseed/truthseed/internal/model"
)

// NewProvider selects a verse provider based on configuration: the
// live provider when the API base URL is present, else the mock
// provider with a warning. Call sites keep their own last-resort
// fallback on top of this (see Service.Lookup).
func NewProvider(cfg model.BibleConfig) Provider {
	if cfg.BaseURL != "" {
		return NewAPIProvider(cfg)
	}

	fmt.Fprintln(os.Stderr, "warning: verse API base URL not configured, falling back to mock provider")
	return NewMockProvider()
}
