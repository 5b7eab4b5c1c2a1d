// Package tfidf implements the transform half of a TF-IDF vectorizer
// exported from a fitted model.
package tfidf

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// Kind is the artifact kind written by the exporter.
const Kind = "tfidf"

// DefaultTokenPattern matches runs of two or more word characters.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

// Ensure Vectorizer implements the interface.
var _ driven.Vectorizer = (*Vectorizer)(nil)

// Artifact is the serialised vectorizer.
type Artifact struct {
	Kind         string         `json:"kind"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	NgramRange   []int          `json:"ngram_range,omitempty"`
	Lowercase    *bool          `json:"lowercase,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf,omitempty"`
	Norm         *string        `json:"norm,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty"`
}

// Vectorizer maps text onto a fixed vocabulary with TF-IDF weights.
// It is immutable after construction.
type Vectorizer struct {
	names       []string
	index       map[string]int
	idf         []float64
	minN, maxN  int
	lowercase   bool
	sublinearTF bool
	norm        string
	token       *regexp.Regexp
}

// Load reads a vectorizer artifact from path.
func Load(path string) (*Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading vectorizer %s: %v", domain.ErrModelLoad, path, err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: decoding vectorizer %s: %v", domain.ErrModelLoad, path, err)
	}

	v, err := New(a)
	if err != nil {
		return nil, fmt.Errorf("vectorizer %s: %w", path, err)
	}
	return v, nil
}

// New builds a vectorizer from a decoded artifact.
func New(a Artifact) (*Vectorizer, error) {
	if a.Kind != "" && a.Kind != Kind {
		return nil, fmt.Errorf("%w: unsupported vectorizer kind %q", domain.ErrModelLoad, a.Kind)
	}
	n := len(a.Vocabulary)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", domain.ErrModelLoad)
	}
	if len(a.IDF) != n {
		return nil, fmt.Errorf("%w: %d idf weights for %d terms", domain.ErrModelLoad, len(a.IDF), n)
	}

	names := make([]string, n)
	for term, col := range a.Vocabulary {
		if col < 0 || col >= n {
			return nil, fmt.Errorf("%w: term %q has column %d outside [0,%d)", domain.ErrModelLoad, term, col, n)
		}
		if names[col] != "" {
			return nil, fmt.Errorf("%w: column %d assigned to %q and %q", domain.ErrModelLoad, col, names[col], term)
		}
		names[col] = term
	}
	for i, w := range a.IDF {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: idf weight %d is not finite", domain.ErrModelLoad, i)
		}
	}

	minN, maxN := 1, 1
	if len(a.NgramRange) != 0 {
		if len(a.NgramRange) != 2 || a.NgramRange[0] < 1 || a.NgramRange[0] > a.NgramRange[1] {
			return nil, fmt.Errorf("%w: invalid ngram_range %v", domain.ErrModelLoad, a.NgramRange)
		}
		minN, maxN = a.NgramRange[0], a.NgramRange[1]
	}

	norm := "l2"
	if a.Norm != nil {
		norm = strings.ToLower(*a.Norm)
	}
	switch norm {
	case "l1", "l2":
	case "", "none":
		norm = ""
	default:
		return nil, fmt.Errorf("%w: unsupported norm %q", domain.ErrModelLoad, norm)
	}

	pattern := a.TokenPattern
	if pattern == "" {
		pattern = DefaultTokenPattern
	}
	// RE2 has no (?u) flag; Unicode classes are opt-in per escape instead.
	token, err := regexp.Compile(strings.TrimPrefix(pattern, "(?u)"))
	if err != nil {
		return nil, fmt.Errorf("%w: token pattern: %v", domain.ErrModelLoad, err)
	}

	lowercase := true
	if a.Lowercase != nil {
		lowercase = *a.Lowercase
	}

	index := make(map[string]int, n)
	for term, col := range a.Vocabulary {
		index[term] = col
	}
	idf := make([]float64, n)
	copy(idf, a.IDF)

	return &Vectorizer{
		names:       names,
		index:       index,
		idf:         idf,
		minN:        minN,
		maxN:        maxN,
		lowercase:   lowercase,
		sublinearTF: a.SublinearTF,
		norm:        norm,
		token:       token,
	}, nil
}

// Width returns the vocabulary size.
func (v *Vectorizer) Width() int {
	return len(v.names)
}

// FeatureNames returns the vocabulary in column order.
func (v *Vectorizer) FeatureNames() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Transform returns the TF-IDF matrix of texts, one row per text.
// Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(texts []string) domain.FeatureMatrix {
	m := domain.NewFeatureMatrix(len(texts), len(v.names))
	for i, text := range texts {
		row := m.Row(i)
		for _, term := range v.analyse(text) {
			if col, ok := v.index[term]; ok {
				row[col]++
			}
		}
		v.weight(row)
	}
	return m
}

// analyse tokenises text and expands it into the configured n-grams.
func (v *Vectorizer) analyse(text string) []string {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	tokens := v.token.FindAllString(text, -1)
	if v.maxN == 1 {
		return tokens
	}

	var terms []string
	if v.minN == 1 {
		terms = append(terms, tokens...)
	}
	start := v.minN
	if start == 1 {
		start = 2
	}
	for n := start; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// weight converts raw counts in row to normalised TF-IDF values in place.
func (v *Vectorizer) weight(row []float64) {
	var sum float64
	for j, tf := range row {
		if tf == 0 {
			continue
		}
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		w := tf * v.idf[j]
		row[j] = w
		switch v.norm {
		case "l2":
			sum += w * w
		case "l1":
			sum += math.Abs(w)
		}
	}

	if v.norm == "" || sum == 0 {
		return
	}
	if v.norm == "l2" {
		sum = math.Sqrt(sum)
	}
	for j := range row {
		row[j] /= sum
	}
}
