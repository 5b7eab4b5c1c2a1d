// Package linear implements inference for linear sentiment classifiers
// exported from fitted models: logistic regression, which estimates class
// probabilities, and linear SVC, which only has a decision function.
package linear

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// Artifact kinds.
const (
	KindLogisticRegression = "logistic_regression"
	KindLinearSVC          = "linear_svc"
)

// Multi-class strategies for logistic regression.
const (
	MultiClassMultinomial = "multinomial"
	MultiClassOVR         = "ovr"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driven.Classifier           = (*LogisticRegression)(nil)
	_ driven.ProbabilityEstimator = (*LogisticRegression)(nil)
	_ driven.Classifier           = (*LinearSVC)(nil)
)

// Artifact is the serialised form of a linear classifier.
// Binary models carry a single coefficient row scoring the second class.
type Artifact struct {
	Kind       string      `json:"kind"`
	Classes    []int       `json:"classes"`
	Coef       [][]float64 `json:"coef"`
	Intercept  []float64   `json:"intercept"`
	MultiClass string      `json:"multi_class,omitempty"`
}

// Model holds the shared weights of a linear classifier.
type Model struct {
	classes   []domain.Label
	coef      [][]float64
	intercept []float64
	width     int
}

func newModel(a Artifact) (*Model, error) {
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two classes, got %d", domain.ErrModelLoad, len(a.Classes))
	}
	classes := make([]domain.Label, len(a.Classes))
	seen := make(map[domain.Label]bool, len(a.Classes))
	for i, c := range a.Classes {
		l, err := domain.ParseLabel(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
		}
		if seen[l] {
			return nil, fmt.Errorf("%w: duplicate class %d", domain.ErrModelLoad, c)
		}
		seen[l] = true
		classes[i] = l
	}

	rows := len(classes)
	if rows == 2 {
		rows = 1
	}
	if len(a.Coef) != rows {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d classes", domain.ErrModelLoad, len(a.Coef), len(classes))
	}
	if len(a.Intercept) != rows {
		return nil, fmt.Errorf("%w: %d intercepts for %d coefficient rows", domain.ErrModelLoad, len(a.Intercept), rows)
	}

	width := len(a.Coef[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty coefficient row", domain.ErrModelLoad)
	}
	coef := make([][]float64, rows)
	for i, row := range a.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("%w: coefficient row %d has %d values, want %d", domain.ErrModelLoad, i, len(row), width)
		}
		for _, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: coefficient row %d is not finite", domain.ErrModelLoad, i)
			}
		}
		coef[i] = append([]float64(nil), row...)
	}

	return &Model{
		classes:   classes,
		coef:      coef,
		intercept: append([]float64(nil), a.Intercept...),
		width:     width,
	}, nil
}

// Classes returns the labels the model can emit, in model order.
func (m *Model) Classes() []domain.Label {
	out := make([]domain.Label, len(m.classes))
	copy(out, m.classes)
	return out
}

// Width returns the number of features the model expects.
func (m *Model) Width() int {
	return m.width
}

// binary reports whether the model scores only the second class.
func (m *Model) binary() bool {
	return len(m.coef) == 1
}

// Decision returns the raw decision scores, one row per input row.
func (m *Model) Decision(x domain.FeatureMatrix) ([][]float64, error) {
	if err := x.CheckWidth(m.width); err != nil {
		return nil, err
	}

	scores := make([][]float64, x.Rows())
	for i := range scores {
		features := x.Row(i)
		s := make([]float64, len(m.coef))
		for k, w := range m.coef {
			sum := m.intercept[k]
			for j, f := range features {
				if f != 0 {
					sum += w[j] * f
				}
			}
			s[k] = sum
		}
		scores[i] = s
	}
	return scores, nil
}

// Predict returns the highest scoring label for each row.
// Ties resolve to the earliest class in model order.
func (m *Model) Predict(x domain.FeatureMatrix) ([]domain.Label, error) {
	scores, err := m.Decision(x)
	if err != nil {
		return nil, err
	}

	labels := make([]domain.Label, len(scores))
	for i, s := range scores {
		if m.binary() {
			if s[0] > 0 {
				labels[i] = m.classes[1]
			} else {
				labels[i] = m.classes[0]
			}
			continue
		}
		labels[i] = m.classes[Argmax(s)]
	}
	return labels, nil
}

// LogisticRegression is a linear classifier with probability estimates.
type LogisticRegression struct {
	*Model
	multinomial bool
}

// NewLogisticRegression validates a and builds the classifier.
func NewLogisticRegression(a Artifact) (*LogisticRegression, error) {
	if a.Kind != "" && a.Kind != KindLogisticRegression {
		return nil, fmt.Errorf("%w: kind %q is not %s", domain.ErrModelLoad, a.Kind, KindLogisticRegression)
	}
	m, err := newModel(a)
	if err != nil {
		return nil, err
	}

	var multinomial bool
	switch a.MultiClass {
	case "", "auto", MultiClassMultinomial:
		multinomial = true
	case MultiClassOVR:
	default:
		return nil, fmt.Errorf("%w: unsupported multi_class %q", domain.ErrModelLoad, a.MultiClass)
	}
	return &LogisticRegression{Model: m, multinomial: multinomial}, nil
}

// PredictProba returns class probabilities in Classes() order.
func (lr *LogisticRegression) PredictProba(x domain.FeatureMatrix) ([][]float64, error) {
	scores, err := lr.Decision(x)
	if err != nil {
		return nil, err
	}

	proba := make([][]float64, len(scores))
	for i, s := range scores {
		switch {
		case lr.binary():
			p := sigmoid(s[0])
			proba[i] = []float64{1 - p, p}
		case lr.multinomial:
			proba[i] = softmax(s)
		default:
			proba[i] = ovr(s)
		}
	}
	return proba, nil
}

// LinearSVC is a linear classifier with a decision function only.
type LinearSVC struct {
	*Model
}

// NewLinearSVC validates a and builds the classifier.
func NewLinearSVC(a Artifact) (*LinearSVC, error) {
	if a.Kind != "" && a.Kind != KindLinearSVC {
		return nil, fmt.Errorf("%w: kind %q is not %s", domain.ErrModelLoad, a.Kind, KindLinearSVC)
	}
	m, err := newModel(a)
	if err != nil {
		return nil, err
	}
	return &LinearSVC{Model: m}, nil
}

// BuildLogisticRegression decodes a logistic regression artifact.
func BuildLogisticRegression(raw []byte) (driven.Classifier, error) {
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrModelLoad, KindLogisticRegression, err)
	}
	return NewLogisticRegression(a)
}

// BuildLinearSVC decodes a linear SVC artifact.
func BuildLinearSVC(raw []byte) (driven.Classifier, error) {
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrModelLoad, KindLinearSVC, err)
	}
	return NewLinearSVC(a)
}

// Argmax returns the index of the largest value. The first maximum wins.
func Argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func softmax(s []float64) []float64 {
	maxScore := s[Argmax(s)]
	out := make([]float64, len(s))
	var sum float64
	for i, v := range s {
		out[i] = math.Exp(v - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func ovr(s []float64) []float64 {
	out := make([]float64, len(s))
	var sum float64
	for i, v := range s {
		out[i] = sigmoid(v)
		sum += out[i]
	}
	if sum == 0 {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
