package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/logger"
	"github.com/satya-labs/satya-cli/internal/ml/tfidf"
)

// Ensure Loader implements the interface.
var _ driven.ModelProvider = (*Loader)(nil)

// LoadClassifier reads a classifier artifact and builds it with the
// builder registered for its kind.
func LoadClassifier(path string, reg *Registry) (driven.Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading classifier %s: %v", domain.ErrModelLoad, path, err)
	}

	var header struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("%w: decoding classifier %s: %v", domain.ErrModelLoad, path, err)
	}
	if header.Kind == "" {
		return nil, fmt.Errorf("%w: classifier %s has no kind", domain.ErrModelLoad, path)
	}

	c, err := reg.Build(header.Kind, raw)
	if err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	return c, nil
}

// Load reads both artifacts and checks that the classifier expects
// exactly as many features as the vectorizer produces. The classifier's
// probability capability is resolved here and nowhere else.
func Load(vectorizerPath, modelPath string, reg *Registry) (*driven.Models, error) {
	defer logger.Timed("load models")()

	v, err := tfidf.Load(vectorizerPath)
	if err != nil {
		return nil, err
	}
	c, err := LoadClassifier(modelPath, reg)
	if err != nil {
		return nil, err
	}
	if c.Width() != v.Width() {
		return nil, fmt.Errorf("%w: classifier expects %d features, vectorizer produces %d",
			domain.ErrModelLoad, c.Width(), v.Width())
	}

	m := &driven.Models{Vectorizer: v, Classifier: c}
	if p, ok := c.(driven.ProbabilityEstimator); ok {
		m.Probabilities = p
	}
	logger.Debug("loaded %d-term vectorizer and %v classifier (probabilities: %t)",
		v.Width(), c.Classes(), m.Probabilities != nil)
	return m, nil
}

// Loader loads models on first use. Concurrent callers share one load
// and every caller sees the same result, including a failure.
type Loader struct {
	load func() (*driven.Models, error)
}

// NewLoader returns a loader for the given artifact paths.
func NewLoader(vectorizerPath, modelPath string, reg *Registry) *Loader {
	return &Loader{
		load: sync.OnceValues(func() (*driven.Models, error) {
			return Load(vectorizerPath, modelPath, reg)
		}),
	}
}

// Models returns the loaded models, loading them if needed.
func (l *Loader) Models() (*driven.Models, error) {
	return l.load()
}
