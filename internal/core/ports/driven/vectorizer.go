package driven

import "github.com/satya-labs/satya-cli/internal/core/domain"

// Vectorizer transforms normalised text into a feature matrix.
// The vocabulary is fixed when the vectorizer is loaded.
type Vectorizer interface {
	// Transform returns one row per input text, in input order.
	// Column count always equals Width, including for empty input.
	Transform(texts []string) domain.FeatureMatrix

	// Width returns the vocabulary size.
	Width() int

	// FeatureNames returns the vocabulary in column order.
	FeatureNames() []string
}
