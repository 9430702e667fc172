package bible

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// verseSegment is one atomic unit of returned text from the verse API.
// The API answers with a single object for one verse and an array of
// objects for a range.
type verseSegment struct {
	Verse  string `json:"verse"`
	Number int    `json:"number"`
	Study  string `json:"study"`
	ID     string `json:"id"`
}

// extractText normalizes a verse API payload to cleaned plain text.
// A payload that succeeds at the transport layer but carries no usable
// text after cleanup is an extraction failure.
func extractText(payload []byte) (string, error) {
	segments, err := decodeSegments(payload)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("empty response payload")
	}

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Verse)
	}

	text := CleanText(strings.Join(parts, " "))
	if text == "" {
		return "", fmt.Errorf("empty verse content")
	}
	return text, nil
}

// decodeSegments accepts either a single segment object or an ordered
// list of segments and normalizes to a list
func decodeSegments(payload []byte) ([]verseSegment, error) {
	var list []verseSegment
	if err := json.Unmarshal(payload, &list); err == nil {
		return list, nil
	}

	var single verseSegment
	if err := json.Unmarshal(payload, &single); err != nil {
		return nil, fmt.Errorf("unparseable response payload: %w", err)
	}
	return []verseSegment{single}, nil
}

// CleanText strips markup tags and collapses all whitespace runs
// (including newlines and tabs) to single spaces
func CleanText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
