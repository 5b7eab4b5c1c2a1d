package comment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Normaliser cleans comment text.
// It is safe for concurrent use as long as its Lemmatizer is.
type Normaliser struct {
	lemmatizer driven.Lemmatizer
}

// New creates a normaliser. A nil lemmatizer leaves tokens unchanged.
func New(lemmatizer driven.Lemmatizer) *Normaliser {
	return &Normaliser{lemmatizer: lemmatizer}
}

// Normalise returns the cleaned form of text.
// On any internal failure it returns text unmodified.
func (n *Normaliser) Normalise(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("normalise: returning input unchanged: %v", r)
			out = text
		}
	}()

	// cases.Caser is stateful, so one is created per call.
	s := cases.Lower(language.Und).String(text)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.Map(keepRune, s)

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if !dropped(w) {
			kept = append(kept, w)
		}
	}

	for i, w := range kept {
		kept[i] = n.lemma(w)
	}

	return strings.Join(kept, " ")
}

// IsStopWord reports whether word is in the full English stop-word list.
func (n *Normaliser) IsStopWord(word string) bool {
	return IsStopWord(word)
}

// lemma lemmatises w. A lemma is only used if it would survive
// normalisation unchanged, which keeps Normalise idempotent.
func (n *Normaliser) lemma(w string) string {
	if n.lemmatizer == nil {
		return w
	}
	l := n.lemmatizer.Lemma(w)
	if l == "" || l == w {
		return w
	}
	if !stable(l) || dropped(l) || n.lemmatizer.Lemma(l) != l {
		return w
	}
	return l
}

// keepRune maps characters outside the allowed set to -1 (dropped).
func keepRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case r == '!' || r == '?' || r == '.' || r == ',':
		return r
	case unicode.IsSpace(r):
		return r
	default:
		return -1
	}
}

// stable reports whether a lemma is a single lowercase token made of allowed characters.
func stable(word string) bool {
	for _, r := range word {
		if unicode.IsSpace(r) || keepRune(r) < 0 || (r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
