// Package scripture maps locale-specific book names to the verse API's
// book identifiers and formats references into its path syntax.
package scripture

import (
	"fmt"
	"strings"

	"github.com/truthseed/truthseed/internal/model"
)

// bookSlugs maps normalized Spanish book names to the API's lowercase
// slugs. Covers all 66 canonical books plus accented/unaccented and
// numeric-prefix variants. Lookup is exact: no fuzzy matching.
var bookSlugs = map[string]string{
	// Old Testament
	"génesis":                "genesis",
	"genesis":                "genesis",
	"éxodo":                  "exodo",
	"exodo":                  "exodo",
	"levítico":               "levitico",
	"levitico":               "levitico",
	"números":                "numeros",
	"numeros":                "numeros",
	"deuteronomio":           "deuteronomio",
	"josué":                  "josue",
	"josue":                  "josue",
	"jueces":                 "jueces",
	"rut":                    "rut",
	"1 samuel":               "1-samuel",
	"2 samuel":               "2-samuel",
	"1 reyes":                "1-reyes",
	"2 reyes":                "2-reyes",
	"1 crónicas":             "1-cronicas",
	"1 cronicas":             "1-cronicas",
	"2 crónicas":             "2-cronicas",
	"2 cronicas":             "2-cronicas",
	"esdras":                 "esdras",
	"nehemías":               "nehemias",
	"nehemias":               "nehemias",
	"ester":                  "ester",
	"job":                    "job",
	"salmos":                 "salmos",
	"salmo":                  "salmos",
	"proverbios":             "proverbios",
	"eclesiastés":            "eclesiastes",
	"eclesiastes":            "eclesiastes",
	"cantares":               "cantares",
	"cantar de los cantares": "cantares",
	"isaías":                 "isaias",
	"isaias":                 "isaias",
	"jeremías":               "jeremias",
	"jeremias":               "jeremias",
	"lamentaciones":          "lamentaciones",
	"ezequiel":               "ezequiel",
	"daniel":                 "daniel",
	"oseas":                  "oseas",
	"joel":                   "joel",
	"amós":                   "amos",
	"amos":                   "amos",
	"abdías":                 "abdias",
	"abdias":                 "abdias",
	"jonás":                  "jonas",
	"jonas":                  "jonas",
	"miqueas":                "miqueas",
	"nahúm":                  "nahum",
	"nahum":                  "nahum",
	"habacuc":                "habacuc",
	"sofonías":               "sofonias",
	"sofonias":               "sofonias",
	"hageo":                  "hageo",
	"zacarías":               "zacarias",
	"zacarias":               "zacarias",
	"malaquías":              "malaquias",
	"malaquias":              "malaquias",

	// New Testament
	"mateo":             "mateo",
	"marcos":            "marcos",
	"lucas":             "lucas",
	"juan":              "juan",
	"hechos":            "hechos",
	"romanos":           "romanos",
	"1 corintios":       "1-corintios",
	"2 corintios":       "2-corintios",
	"gálatas":           "galatas",
	"galatas":           "galatas",
	"efesios":           "efesios",
	"filipenses":        "filipenses",
	"colosenses":        "colosenses",
	"1 tesalonicenses":  "1-tesalonicenses",
	"2 tesalonicenses":  "2-tesalonicenses",
	"1 timoteo":         "1-timoteo",
	"2 timoteo":         "2-timoteo",
	"tito":              "tito",
	"filemón":           "filemon",
	"filemon":           "filemon",
	"hebreos":           "hebreos",
	"santiago":          "santiago",
	"1 pedro":           "1-pedro",
	"2 pedro":           "2-pedro",
	"1 juan":            "1-juan",
	"2 juan":            "2-juan",
	"3 juan":            "3-juan",
	"judas":             "judas",
	"apocalipsis":       "apocalipsis",
}

// NormalizeBookName resolves a Spanish book name to the API's slug.
// Lookup is case-insensitive and ignores surrounding whitespace.
// Returns "" and false for any name not in the table.
func NormalizeBookName(name string) (string, bool) {
	slug, ok := bookSlugs[strings.ToLower(strings.TrimSpace(name))]
	return slug, ok
}

// SupportedBookNames returns every accepted book-name spelling
func SupportedBookNames() []string {
	names := make([]string, 0, len(bookSlugs))
	for name := range bookSlugs {
		names = append(names, name)
	}
	return names
}

// FormatVerseID formats a reference into the API's verse path segment:
// "book/chapter/verse" for a single verse, "book/chapter/start-end"
// for a range. A VerseEnd equal to VerseStart is treated exactly like
// an absent VerseEnd. Returns false when the book is not recognized,
// in which case no request should be attempted.
func FormatVerseID(ref model.Reference) (string, bool) {
	slug, ok := NormalizeBookName(ref.Book)
	if !ok {
		return "", false
	}

	if ref.VerseEnd == 0 || ref.VerseEnd == ref.VerseStart {
		return fmt.Sprintf("%s/%d/%d", slug, ref.Chapter, ref.VerseStart), true
	}
	return fmt.Sprintf("%s/%d/%d-%d", slug, ref.Chapter, ref.VerseStart, ref.VerseEnd), true
}
