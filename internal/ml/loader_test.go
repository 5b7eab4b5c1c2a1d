package ml

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

const testVectorizer = `{
  "kind": "tfidf",
  "vocabulary": {"love": 0, "hate": 1, "video": 2},
  "idf": [1.5, 1.5, 1.0]
}`

const testLogistic = `{
  "kind": "logistic_regression",
  "classes": [-1, 0, 1],
  "coef": [[-2, 3, 0], [0, 0, 0.5], [3, -2, 0]],
  "intercept": [0, 0.2, 0]
}`

const testSVC = `{
  "kind": "linear_svc",
  "classes": [-1, 0, 1],
  "coef": [[-2, 3, 0], [0, 0, 0.5], [3, -2, 0]],
  "intercept": [0, 0.2, 0]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func defaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

func TestLoad_LogisticRegression(t *testing.T) {
	dir := t.TempDir()
	vec := writeFile(t, dir, "vec.json", testVectorizer)
	model := writeFile(t, dir, "model.json", testLogistic)

	m, err := Load(vec, model, defaultRegistry())
	require.NoError(t, err)
	assert.NotNil(t, m.Probabilities)

	x := m.Vectorizer.Transform([]string{"love this video", "hate it"})
	labels, err := m.Classifier.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, []domain.Label{domain.Positive, domain.Negative}, labels)
}

func TestLoad_LinearSVC(t *testing.T) {
	dir := t.TempDir()
	vec := writeFile(t, dir, "vec.json", testVectorizer)
	model := writeFile(t, dir, "model.json", testSVC)

	m, err := Load(vec, model, defaultRegistry())
	require.NoError(t, err)
	assert.Nil(t, m.Probabilities)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	vec := writeFile(t, dir, "vec.json", testVectorizer)
	model := writeFile(t, dir, "model.json", testLogistic)

	tests := []struct {
		name  string
		vec   string
		model string
	}{
		{"missing vectorizer", filepath.Join(dir, "nope.json"), model},
		{"missing model", vec, filepath.Join(dir, "nope.json")},
		{"model without kind", vec, writeFile(t, dir, "nokind.json", `{"classes":[-1,1]}`)},
		{"unknown kind", vec, writeFile(t, dir, "forest.json", `{"kind":"random_forest"}`)},
		{"invalid model json", vec, writeFile(t, dir, "bad.json", `{`)},
		{"width mismatch", vec, writeFile(t, dir, "narrow.json",
			`{"kind":"logistic_regression","classes":[-1,1],"coef":[[1,2]],"intercept":[0]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.vec, tt.model, defaultRegistry())
			assert.ErrorIs(t, err, domain.ErrModelLoad)
			assert.Equal(t, domain.FailureModelLoad, domain.FailureOf(err))
		})
	}
}

func TestLoader_LoadsOnce(t *testing.T) {
	dir := t.TempDir()
	vec := writeFile(t, dir, "vec.json", testVectorizer)
	model := writeFile(t, dir, "model.json", testLogistic)

	l := NewLoader(vec, model, defaultRegistry())

	var wg sync.WaitGroup
	results := make([]*driven.Models, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := l.Models()
			assert.NoError(t, err)
			results[i] = m
		}()
	}
	wg.Wait()

	for _, m := range results {
		assert.Same(t, results[0], m)
	}

	// Artifacts are not re-read once loaded.
	require.NoError(t, os.Remove(model))
	m, err := l.Models()
	require.NoError(t, err)
	assert.Same(t, results[0], m)
}

func TestLoader_CachesFailure(t *testing.T) {
	dir := t.TempDir()
	vec := writeFile(t, dir, "vec.json", testVectorizer)
	model := filepath.Join(dir, "model.json")

	l := NewLoader(vec, model, defaultRegistry())
	_, err := l.Models()
	require.ErrorIs(t, err, domain.ErrModelLoad)

	writeFile(t, dir, "model.json", testLogistic)
	_, err = l.Models()
	assert.ErrorIs(t, err, domain.ErrModelLoad)
}
