package driven

// TextNormaliser cleans comment text before vectorisation.
// Normalise is pure and must never fail: on internal error it returns
// its input unchanged.
type TextNormaliser interface {
	Normalise(text string) string

	// IsStopWord reports whether word carries no content on its own.
	// Used by term frequency counting, not by Normalise.
	IsStopWord(word string) bool
}

// Lemmatizer reduces a lowercase word to its dictionary base form.
// Words it does not know are returned unchanged.
type Lemmatizer interface {
	Lemma(word string) string
}
