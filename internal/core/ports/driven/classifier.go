package driven

import "github.com/satya-labs/satya-cli/internal/core/domain"

// Classifier predicts a sentiment label for each row of a feature matrix.
type Classifier interface {
	// Predict returns one label per row, in row order.
	Predict(m domain.FeatureMatrix) ([]domain.Label, error)

	// Classes returns the labels the model can emit, in model order.
	Classes() []domain.Label

	// Width returns the number of features the model expects.
	Width() int
}

// ProbabilityEstimator is implemented by classifiers that can estimate
// class probabilities. It is detected once, when the model is loaded.
type ProbabilityEstimator interface {
	// PredictProba returns one probability row per input row.
	// Columns follow Classes() and each row sums to 1.
	PredictProba(m domain.FeatureMatrix) ([][]float64, error)
}

// Models is a loaded vectorizer and classifier pair. Both are immutable
// and shared by concurrent analyses without locking.
type Models struct {
	Vectorizer Vectorizer
	Classifier Classifier

	// Probabilities is the classifier's probability capability, or nil
	// when it has none. It is resolved once, when the models are loaded.
	Probabilities ProbabilityEstimator
}

// ModelProvider supplies the shared models, loading them on first use.
// Every call returns the same models or the same load failure.
type ModelProvider interface {
	Models() (*Models, error)
}
