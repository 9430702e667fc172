package model

import "fmt"

// Reference is a citation to a span of verses within a book chapter,
// plus the translation it should be read in. It is a value object:
// constructed at the boundary from validated input, never mutated.
type Reference struct {
	Book        string `json:"book" yaml:"book"`
	Chapter     int    `json:"chapter" yaml:"chapter"`
	VerseStart  int    `json:"verseStart" yaml:"verseStart"`
	VerseEnd    int    `json:"verseEnd,omitempty" yaml:"verseEnd,omitempty"` // 0 means single verse
	Display     string `json:"display" yaml:"display"`
	Translation string `json:"translation" yaml:"translation"`
}

// VerseRange renders the verse span as "start" or "start-end".
// A VerseEnd equal to VerseStart collapses to the single-verse form.
func (r Reference) VerseRange() string {
	if r.VerseEnd == 0 || r.VerseEnd == r.VerseStart {
		return fmt.Sprintf("%d", r.VerseStart)
	}
	return fmt.Sprintf("%d-%d", r.VerseStart, r.VerseEnd)
}

// CacheKey derives the verse-cache key for this reference. Distinct
// (translation, book, chapter, range) tuples yield distinct keys.
func (r Reference) CacheKey() string {
	return fmt.Sprintf("%s:%s:%d:%s", r.Translation, r.Book, r.Chapter, r.VerseRange())
}

// FormatDisplay returns the precomputed display string verbatim.
// The field is authoritative so callers control exact formatting.
func (r Reference) FormatDisplay() string {
	return r.Display
}

// Validate reports every invariant violation, not just the first.
func (r Reference) Validate() []string {
	var problems []string
	if r.Book == "" {
		problems = append(problems, "book name is required")
	}
	if r.Chapter < 1 {
		problems = append(problems, fmt.Sprintf("chapter must be positive, got %d", r.Chapter))
	}
	if r.VerseStart < 1 {
		problems = append(problems, fmt.Sprintf("verseStart must be positive, got %d", r.VerseStart))
	}
	if r.VerseEnd != 0 && r.VerseEnd < r.VerseStart {
		problems = append(problems, fmt.Sprintf("verseEnd %d is before verseStart %d", r.VerseEnd, r.VerseStart))
	}
	if r.Display == "" {
		problems = append(problems, "display text is required")
	}
	if r.Translation == "" {
		problems = append(problems, "translation is required")
	}
	return problems
}
