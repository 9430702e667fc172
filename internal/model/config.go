package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the full application configuration
type Config struct {
	Bible    BibleConfig    `yaml:"bible" mapstructure:"bible"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Speech   SpeechConfig   `yaml:"speech" mapstructure:"speech"`
	Selector SelectorConfig `yaml:"selector" mapstructure:"selector"`
	Verbose  bool           `yaml:"verbose" mapstructure:"verbose"`
}

// BibleConfig configures the upstream verse API client
type BibleConfig struct {
	// BaseURL of the verse API. Empty disables the live provider and
	// selects the mock provider at construction time.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// DefaultTranslation is used when a reference carries no translation code
	DefaultTranslation string `yaml:"default_translation" mapstructure:"default_translation"`

	// Timeout bounds each upstream request
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RetryDelay elapses fully before the single retry of a 5xx response
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`

	// RequestsPerSecond and Burst feed the upstream rate limiter
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig configures the persistent verse cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	TTL       time.Duration `yaml:"ttl" mapstructure:"ttl"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
}

// ServerConfig configures the HTTP proxy server
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// SpeechConfig configures the text-to-speech synthesizer
type SpeechConfig struct {
	// Provider name: "openai" or "" (disabled, no-op synthesizer)
	Provider string `yaml:"provider" mapstructure:"provider"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`
	Model    string `yaml:"model" mapstructure:"model"`
	Voice    string `yaml:"voice" mapstructure:"voice"`
}

// SelectorConfig configures random truth selection
type SelectorConfig struct {
	// AvoidCount bounds the recently-shown history
	AvoidCount int `yaml:"avoid_count" mapstructure:"avoid_count"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Bible: BibleConfig{
			BaseURL:            "https://bible-api.deno.dev/api/read",
			DefaultTranslation: "nvi",
			Timeout:            10 * time.Second,
			RetryDelay:         1 * time.Second,
			RequestsPerSecond:  4,
			Burst:              4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			TTL:       7 * 24 * time.Hour,
			MemoryTTL: 1 * time.Hour,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Speech: SpeechConfig{
			Provider: "",
			Model:    "tts-1",
			Voice:    "alloy",
		},
		Selector: SelectorConfig{
			AvoidCount: 3,
		},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "truthseed-cache")
	}
	return filepath.Join(home, ".truthseed", "cache")
}
