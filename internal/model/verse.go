package model

import "fmt"

// Verse is the success outcome of a verse fetch
type Verse struct {
	Text        string    `json:"text"`
	Reference   Reference `json:"reference"`
	Translation string    `json:"translation"`
}

// VerseError is the failure outcome of a verse fetch. Exactly one of
// Verse or VerseError is produced per fetch attempt, never both.
type VerseError struct {
	Reference Reference
	Message   string
}

func (e *VerseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reference.Display, e.Message)
}

// NewVerseError builds a fetch failure for the given reference
func NewVerseError(ref Reference, format string, args ...interface{}) *VerseError {
	return &VerseError{Reference: ref, Message: fmt.Sprintf(format, args...)}
}
