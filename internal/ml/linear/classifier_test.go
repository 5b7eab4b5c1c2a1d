package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

func matrix(rows ...[]float64) domain.FeatureMatrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := domain.NewFeatureMatrix(len(rows), cols)
	for i, r := range rows {
		copy(m.Row(i), r)
	}
	return m
}

func threeClassArtifact() Artifact {
	return Artifact{
		Kind:    KindLogisticRegression,
		Classes: []int{-1, 0, 1},
		Coef: [][]float64{
			{2, 0, -1},
			{0, 0, 0},
			{-1, 0, 2},
		},
		Intercept: []float64{0, 0.5, 0},
	}
}

func TestLogisticRegression_Predict(t *testing.T) {
	lr, err := NewLogisticRegression(threeClassArtifact())
	require.NoError(t, err)

	labels, err := lr.Predict(matrix(
		[]float64{1, 0, 0},
		[]float64{0, 0, 1},
		[]float64{0, 0, 0},
	))
	require.NoError(t, err)
	assert.Equal(t, []domain.Label{domain.Negative, domain.Positive, domain.Neutral}, labels)
	assert.Equal(t, []domain.Label{domain.Negative, domain.Neutral, domain.Positive}, lr.Classes())
	assert.Equal(t, 3, lr.Width())
}

func TestLogisticRegression_PredictProbaMultinomial(t *testing.T) {
	lr, err := NewLogisticRegression(threeClassArtifact())
	require.NoError(t, err)

	proba, err := lr.PredictProba(matrix([]float64{1, 0, 0}, []float64{0, 0, 0}))
	require.NoError(t, err)
	require.Len(t, proba, 2)

	for _, row := range proba {
		require.Len(t, row, 3)
		var sum float64
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	// scores 2, 0.5, -1
	z := math.Exp(2) + math.Exp(0.5) + math.Exp(-1)
	assert.InDelta(t, math.Exp(2)/z, proba[0][0], 1e-9)
	assert.Equal(t, 0, Argmax(proba[0]))
	assert.Equal(t, 1, Argmax(proba[1]))
}

func TestLogisticRegression_PredictProbaOVR(t *testing.T) {
	a := threeClassArtifact()
	a.MultiClass = MultiClassOVR
	lr, err := NewLogisticRegression(a)
	require.NoError(t, err)

	proba, err := lr.PredictProba(matrix([]float64{1, 0, 0}))
	require.NoError(t, err)

	s := []float64{sigmoid(2), sigmoid(0.5), sigmoid(-1)}
	sum := s[0] + s[1] + s[2]
	assert.InDeltaSlice(t, []float64{s[0] / sum, s[1] / sum, s[2] / sum}, proba[0], 1e-9)
}

func TestLogisticRegression_Binary(t *testing.T) {
	lr, err := NewLogisticRegression(Artifact{
		Classes:   []int{-1, 1},
		Coef:      [][]float64{{3, -3}},
		Intercept: []float64{0},
	})
	require.NoError(t, err)

	x := matrix([]float64{1, 0}, []float64{0, 1}, []float64{0, 0})
	labels, err := lr.Predict(x)
	require.NoError(t, err)
	// A zero score resolves to the first class.
	assert.Equal(t, []domain.Label{domain.Positive, domain.Negative, domain.Negative}, labels)

	proba, err := lr.PredictProba(x)
	require.NoError(t, err)
	assert.InDelta(t, sigmoid(3), proba[0][1], 1e-9)
	assert.InDelta(t, 1-sigmoid(3), proba[0][0], 1e-9)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, proba[2], 1e-9)
}

func TestLinearSVC(t *testing.T) {
	a := threeClassArtifact()
	a.Kind = KindLinearSVC
	svc, err := NewLinearSVC(a)
	require.NoError(t, err)

	var c driven.Classifier = svc
	_, ok := c.(driven.ProbabilityEstimator)
	assert.False(t, ok, "linear SVC must not estimate probabilities")

	labels, err := svc.Predict(matrix([]float64{0, 0, 1}))
	require.NoError(t, err)
	assert.Equal(t, []domain.Label{domain.Positive}, labels)
}

func TestPredict_EmptyMatrix(t *testing.T) {
	lr, err := NewLogisticRegression(threeClassArtifact())
	require.NoError(t, err)

	labels, err := lr.Predict(domain.NewFeatureMatrix(0, 3))
	require.NoError(t, err)
	assert.Empty(t, labels)

	proba, err := lr.PredictProba(domain.NewFeatureMatrix(0, 3))
	require.NoError(t, err)
	assert.Empty(t, proba)
}

func TestPredict_WidthMismatch(t *testing.T) {
	lr, err := NewLogisticRegression(threeClassArtifact())
	require.NoError(t, err)

	_, err = lr.Predict(domain.NewFeatureMatrix(1, 4))
	assert.ErrorIs(t, err, domain.ErrAlignment)

	_, err = lr.PredictProba(domain.NewFeatureMatrix(1, 2))
	assert.ErrorIs(t, err, domain.ErrAlignment)
}

func TestNew_InvalidArtifacts(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Artifact)
	}{
		{"single class", func(a *Artifact) { a.Classes = []int{1} }},
		{"unknown class", func(a *Artifact) { a.Classes = []int{-1, 0, 2} }},
		{"duplicate class", func(a *Artifact) { a.Classes = []int{-1, 0, 0} }},
		{"coef rows mismatch", func(a *Artifact) { a.Coef = a.Coef[:2] }},
		{"intercept mismatch", func(a *Artifact) { a.Intercept = []float64{0} }},
		{"ragged coef", func(a *Artifact) { a.Coef[1] = []float64{0, 0} }},
		{"empty coef row", func(a *Artifact) { a.Coef = [][]float64{{}, {}, {}} }},
		{"non finite coef", func(a *Artifact) { a.Coef[2][1] = math.NaN() }},
		{"bad multi class", func(a *Artifact) { a.MultiClass = "crammer_singer" }},
		{"wrong kind", func(a *Artifact) { a.Kind = KindLinearSVC }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := threeClassArtifact()
			tt.modify(&a)
			_, err := NewLogisticRegression(a)
			assert.ErrorIs(t, err, domain.ErrModelLoad)
		})
	}
}

func TestBuilders(t *testing.T) {
	raw := []byte(`{"kind":"linear_svc","classes":[-1,0,1],"coef":[[1],[0],[-1]],"intercept":[0,0,0]}`)

	c, err := BuildLinearSVC(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Width())

	_, err = BuildLogisticRegression(raw)
	assert.ErrorIs(t, err, domain.ErrModelLoad)

	_, err = BuildLinearSVC([]byte("not json"))
	assert.ErrorIs(t, err, domain.ErrModelLoad)
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 0, Argmax([]float64{0.5, 0.5}))
	assert.Equal(t, 2, Argmax([]float64{0.1, 0.2, 0.7}))
	assert.Equal(t, 0, Argmax([]float64{1}))
}
