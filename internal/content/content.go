// Package content loads the static truth collection embedded in the
// binary. The collection is loaded once, schema-validated, and held
// read-only in memory.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/truthseed/truthseed/internal/model"
)

//go:embed truths.json
var truthsJSON []byte

// Store holds the validated truth collection
type Store struct {
	truths []model.Truth
	byID   map[string]model.Truth
}

// Load parses and validates the embedded truth collection. Validation
// rejects the load if any record violates the data model, reporting
// every violation rather than just the first.
func Load() (*Store, error) {
	return loadFrom(truthsJSON)
}

func loadFrom(data []byte) (*Store, error) {
	var file model.TruthsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse truths content: %w", err)
	}
	if len(file.Truths) == 0 {
		return nil, fmt.Errorf("truths content is empty")
	}

	var violations []string
	seen := make(map[string]bool, len(file.Truths))
	byID := make(map[string]model.Truth, len(file.Truths))

	for i, truth := range file.Truths {
		for _, p := range truth.Validate() {
			violations = append(violations, fmt.Sprintf("truths[%d] (%s): %s", i, truth.ID, p))
		}
		if truth.ID != "" {
			if seen[truth.ID] {
				violations = append(violations, fmt.Sprintf("truths[%d]: duplicate id %q", i, truth.ID))
			}
			seen[truth.ID] = true
			byID[truth.ID] = truth
		}
	}

	if len(violations) > 0 {
		return nil, fmt.Errorf("invalid truths content (%d violations):\n  %s",
			len(violations), strings.Join(violations, "\n  "))
	}

	return &Store{truths: file.Truths, byID: byID}, nil
}

// All returns the full truth collection in file order
func (s *Store) All() []model.Truth {
	return s.truths
}

// Get looks up a truth by id
func (s *Store) Get(id string) (model.Truth, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Len returns the number of truths
func (s *Store) Len() int {
	return len(s.truths)
}
