package speech

import (
	"context"
	"fmt"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/truthseed/truthseed/internal/model"
)

// OpenAISynthesizer renders verse text with the OpenAI speech API
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
}

// NewOpenAISynthesizer creates an OpenAI-backed synthesizer
func NewOpenAISynthesizer(cfg model.SpeechConfig) (*OpenAISynthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	ttsModel := cfg.Model
	if ttsModel == "" {
		ttsModel = string(openai.TTSModel1)
	}
	voice := cfg.Voice
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}

	return &OpenAISynthesizer{
		client: openai.NewClient(cfg.APIKey),
		model:  ttsModel,
		voice:  voice,
	}, nil
}

// Name returns the synthesizer name
func (s *OpenAISynthesizer) Name() string {
	return "openai"
}

// IsAvailable checks if the API is reachable with the configured key
func (s *OpenAISynthesizer) IsAvailable(ctx context.Context) bool {
	_, err := s.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Synthesize renders text to MP3 audio
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string, speed Speed) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("no text to synthesize")
	}
	if !speed.Valid() {
		speed = SpeedNormal
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.model),
		Voice: openai.SpeechVoice(s.voice),
		Input: text,
		Speed: speed.Rate(),
	})
	if err != nil {
		return nil, fmt.Errorf("speech API error: %w", err)
	}
	defer func() { _ = resp.Close() }()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return audio, nil
}
