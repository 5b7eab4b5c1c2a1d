package ml

import (
	"fmt"
	"sort"
	"strings"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/ml/linear"
)

// BuilderFunc creates a Classifier from a raw artifact.
type BuilderFunc func(raw []byte) (driven.Classifier, error)

// Registry maps classifier artifact kinds to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty classifier registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// RegisterDefaults registers the built-in linear classifiers.
func RegisterDefaults(r *Registry) {
	r.Register(linear.KindLogisticRegression, linear.BuildLogisticRegression)
	r.Register(linear.KindLinearSVC, linear.BuildLinearSVC)
}

// Register adds a builder for kind, replacing any existing one.
func (r *Registry) Register(kind string, builder BuilderFunc) {
	r.builders[kind] = builder
}

// Build creates a classifier of the given kind from raw.
func (r *Registry) Build(kind string, raw []byte) (driven.Classifier, error) {
	builder, ok := r.builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown classifier kind %q (known: %s)",
			domain.ErrModelLoad, kind, strings.Join(r.Names(), ", "))
	}
	return builder(raw)
}

// Names returns all registered kinds in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
