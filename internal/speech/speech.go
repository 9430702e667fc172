// Package speech defines the text-to-speech boundary: plain text in,
// synthesized audio out. Playback itself belongs to the client; this
// package only states the contract and provides the synthesizers.
package speech

import "context"

// Speed selects the reading pace
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// Rate converts a speed to a playback rate multiplier
func (s Speed) Rate() float64 {
	switch s {
	case SpeedSlow:
		return 0.8
	case SpeedFast:
		return 1.2
	default:
		return 1.0
	}
}

// Valid reports whether the speed is one of the enumerated set
func (s Speed) Valid() bool {
	return s == SpeedSlow || s == SpeedNormal || s == SpeedFast
}

// Status reports playback state back across the boundary
type Status string

const (
	StatusIdle     Status = "idle"
	StatusSpeaking Status = "speaking"
	StatusPaused   Status = "paused"
)

// Synthesizer defines the interface for text-to-speech providers
type Synthesizer interface {
	// Name returns the synthesizer name
	Name() string

	// Synthesize renders plain text to audio at the given speed
	Synthesize(ctx context.Context, text string, speed Speed) ([]byte, error)

	// IsAvailable checks if the synthesizer is properly configured
	IsAvailable(ctx context.Context) bool
}
