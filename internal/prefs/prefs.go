// Package prefs persists the small per-client preferences: the chosen
// translation and the recently-shown truth ids. The store is separate
// from the verse cache and every operation is fail-soft: a broken or
// missing prefs file behaves like an empty one.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/truthseed/truthseed/internal/model"
)

type prefsFile struct {
	Translation string   `json:"translation,omitempty"`
	Recent      []string `json:"recent,omitempty"`
}

// Store is a file-backed preference store
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a preference store under dir
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "prefs.json")}
}

// Translation returns the saved translation preference, or the default
// when none is saved or the saved value is not a supported code
func (s *Store) Translation() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.read()
	if model.ValidTranslation(p.Translation) {
		return p.Translation
	}
	return model.DefaultTranslation
}

// SetTranslation saves the translation preference. Unsupported codes
// are rejected; storage failures are reported but not fatal.
func (s *Store) SetTranslation(code string) error {
	if !model.ValidTranslation(code) {
		return fmt.Errorf("unsupported translation: %s", code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.read()
	p.Translation = code
	return s.write(p)
}

// Recent returns the recently-shown truth ids, most recent first
func (s *Store) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().Recent
}

// SaveRecent replaces the recently-shown truth ids. Storage errors are
// swallowed: history is best-effort.
func (s *Store) SaveRecent(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.read()
	p.Recent = ids
	_ = s.write(p)
}

// read loads the prefs file, treating any failure as empty prefs
func (s *Store) read() prefsFile {
	var p prefsFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p)
	return p
}

func (s *Store) write(p prefsFile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
