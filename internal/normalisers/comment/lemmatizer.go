package comment

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// Ensure GolemLemmatizer implements the interface.
var _ driven.Lemmatizer = (*GolemLemmatizer)(nil)

// GolemLemmatizer looks words up in the golem English lemma dictionary.
// The dictionary is read-only after construction, so lookups are safe for
// concurrent use.
type GolemLemmatizer struct {
	lem *golem.Lemmatizer
}

// NewGolemLemmatizer loads the English dictionary.
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading english lemma dictionary: %w", err)
	}
	return &GolemLemmatizer{lem: lem}, nil
}

// Lemma returns the base form of word, or word itself if it is unknown.
func (g *GolemLemmatizer) Lemma(word string) string {
	return g.lem.Lemma(word)
}

// MapLemmatizer is a fixed lookup table, for tests and small vocabularies.
type MapLemmatizer map[string]string

// Lemma returns the mapped base form of word, or word itself.
func (m MapLemmatizer) Lemma(word string) string {
	if l, ok := m[word]; ok {
		return l
	}
	return word
}
