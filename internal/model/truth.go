package model

import (
	"fmt"
	"regexp"
)

// Category classifies a truth statement
type Category string

const (
	CategoryAccepted    Category = "accepted"
	CategorySecure      Category = "secure"
	CategorySignificant Category = "significant"
	CategoryIdentity    Category = "identity"
	CategoryFreedom     Category = "freedom"
	CategoryLoved       Category = "loved"
)

// Categories lists every valid truth category
var Categories = []Category{
	CategoryAccepted,
	CategorySecure,
	CategorySignificant,
	CategoryIdentity,
	CategoryFreedom,
	CategoryLoved,
}

// Valid reports whether the category is one of the fixed set
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Truth is one affirmational statement backed by scripture references.
// The collection is loaded once at startup and read-only thereafter.
type Truth struct {
	ID                string      `json:"id" yaml:"id"`
	Title             string      `json:"title" yaml:"title"`
	RenounceStatement string      `json:"renounceStatement" yaml:"renounceStatement"`
	Category          Category    `json:"category" yaml:"category"`
	References        []Reference `json:"references" yaml:"references"`
	Tags              []string    `json:"tags" yaml:"tags"`
}

// TruthsFile is the shape of the embedded content document
type TruthsFile struct {
	Truths []Truth `json:"truths" yaml:"truths"`
}

var truthIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validate reports every invariant violation for this truth
func (t Truth) Validate() []string {
	var problems []string
	if t.ID == "" {
		problems = append(problems, "id is required")
	} else if !truthIDPattern.MatchString(t.ID) {
		problems = append(problems, fmt.Sprintf("id %q must be lowercase with hyphens", t.ID))
	}
	if t.Title == "" {
		problems = append(problems, "title is required")
	}
	if t.RenounceStatement == "" {
		problems = append(problems, "renounceStatement is required")
	}
	if !t.Category.Valid() {
		problems = append(problems, fmt.Sprintf("unknown category %q", t.Category))
	}
	if len(t.References) == 0 {
		problems = append(problems, "at least one reference is required")
	}
	for i, ref := range t.References {
		for _, p := range ref.Validate() {
			problems = append(problems, fmt.Sprintf("references[%d]: %s", i, p))
		}
	}
	return problems
}
