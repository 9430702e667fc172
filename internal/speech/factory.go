package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthseed/truthseed/internal/model"
)

// NewSynthesizer creates a synthesizer based on configuration
func NewSynthesizer(cfg model.SpeechConfig) (Synthesizer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAISynthesizer(cfg)

	case "":
		// Speech disabled
		return &NoopSynthesizer{}, nil

	default:
		return nil, fmt.Errorf("unknown speech provider: %s (supported: openai)", cfg.Provider)
	}
}

// NoopSynthesizer is used when speech is disabled
type NoopSynthesizer struct{}

// Name returns the synthesizer name
func (s *NoopSynthesizer) Name() string {
	return "noop"
}

// IsAvailable always reports false: no audio can be produced
func (s *NoopSynthesizer) IsAvailable(context.Context) bool {
	return false
}

// Synthesize reports that speech is not configured
func (s *NoopSynthesizer) Synthesize(context.Context, string, Speed) ([]byte, error) {
	return nil, fmt.Errorf("speech synthesis is not configured")
}
