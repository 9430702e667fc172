package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/truthseed/truthseed/internal/model"
	"github.com/truthseed/truthseed/internal/speech"
)

// handleVerse proxies a verse lookup:
// GET /api/verse?book&chapter&verseStart&verseEnd&translation
func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	ref, problems := parseVerseQuery(r)
	if len(problems) > 0 {
		s.writeError(w, http.StatusBadRequest, "invalid query parameters", problems)
		return
	}

	if !s.upstreamOK {
		s.writeError(w, http.StatusServiceUnavailable,
			"verse API not configured: set the bible base_url", nil)
		return
	}

	verse, err := s.verses.Lookup(r.Context(), ref)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	w.Header().Set("Cache-Control", verseCacheControl)
	s.writeJSON(w, http.StatusOK, verse)
}

// parseVerseQuery validates the verse query at the boundary, reporting
// every problem rather than just the first. Input errors never reach
// the lookup core.
func parseVerseQuery(r *http.Request) (model.Reference, []string) {
	q := r.URL.Query()
	var problems []string

	book := q.Get("book")
	if book == "" {
		problems = append(problems, "book is required")
	}

	chapter, err := positiveInt(q.Get("chapter"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("chapter: %v", err))
	}

	verseStart, err := positiveInt(q.Get("verseStart"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("verseStart: %v", err))
	}

	verseEnd := 0
	if raw := q.Get("verseEnd"); raw != "" {
		verseEnd, err = positiveInt(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("verseEnd: %v", err))
		} else if verseStart > 0 && verseEnd < verseStart {
			problems = append(problems, fmt.Sprintf("verseEnd %d is before verseStart %d", verseEnd, verseStart))
		}
	}

	translation := q.Get("translation")
	if translation == "" {
		translation = model.DefaultTranslation
	}

	display := fmt.Sprintf("%s %d:%d", book, chapter, verseStart)
	if verseEnd > 0 && verseEnd != verseStart {
		display = fmt.Sprintf("%s-%d", display, verseEnd)
	}

	return model.Reference{
		Book:        book,
		Chapter:     chapter,
		VerseStart:  verseStart,
		VerseEnd:    verseEnd,
		Display:     display,
		Translation: translation,
	}, problems
}

func positiveInt(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be a number, got %q", raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

// handleTruths lists the full truth collection
func (s *Server) handleTruths(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"truths": s.store.All(),
	})
}

// handleTruth returns one truth by id
func (s *Server) handleTruth(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "truthID")
	truth, ok := s.store.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("truth not found: %s", id), nil)
		return
	}
	s.writeJSON(w, http.StatusOK, truth)
}

// handleRandomTruth picks a truth, avoiding recently shown ones. An
// optional seed query makes the pick deterministic for testing.
func (s *Server) handleRandomTruth(w http.ResponseWriter, r *http.Request) {
	var truth model.Truth
	var ok bool

	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("seed must be a number, got %q", raw), nil)
			return
		}
		truth, ok = s.selector.PickSeeded(s.store.All(), seed)
	} else {
		truth, ok = s.selector.Pick(s.store.All())
	}

	if !ok {
		s.writeError(w, http.StatusNotFound, "no truths available", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, truth)
}

// handleGetTranslations reports the supported codes and the saved
// preference
func (s *Server) handleGetTranslations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"translations": model.Translations,
		"current":      s.prefs.Translation(),
	})
}

// handleSetTranslation saves the translation preference
func (s *Server) handleSetTranslation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Translation string `json:"translation"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := s.prefs.SetTranslation(req.Translation); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"translation": req.Translation})
}

// handleSpeech synthesizes plain text to audio
func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Speed string `json:"speed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "text is required", nil)
		return
	}

	spd := speech.Speed(req.Speed)
	if req.Speed == "" {
		spd = speech.SpeedNormal
	} else if !spd.Valid() {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("speed must be one of slow, normal, fast; got %q", req.Speed), nil)
		return
	}

	audio, err := s.synth.Synthesize(r.Context(), req.Text, spd)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := w.Write(audio); err != nil {
		log.Printf("write audio: %v", err)
	}
}
