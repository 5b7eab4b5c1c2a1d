package services

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// termPunctuation is stripped from the ends of tokens before counting.
const termPunctuation = "!?.,"

// round2 rounds v to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarise computes dashboard metrics over records. The score maps the
// average sentiment from [-1, 1] onto [0, 10].
func Summarise(records []domain.AnalysisRecord) domain.Summary {
	var s domain.Summary
	s.TotalComments = len(records)
	if s.TotalComments == 0 {
		return s
	}

	authors := make(map[string]struct{}, len(records))
	var words, sentiment int
	for _, r := range records {
		authors[r.AuthorID] = struct{}{}
		words += len(strings.Fields(r.OriginalComment))
		sentiment += int(r.Sentiment)
		s.Counts.Add(r.Sentiment)
	}

	total := float64(s.TotalComments)
	s.UniqueCommenters = len(authors)
	s.AvgWords = round2(float64(words) / total)
	s.AvgSentiment = round2(float64(sentiment) / total)
	s.Score = round2((s.AvgSentiment + 1) / 2 * 10)
	return s
}

// TermFrequency normalises comments and returns the limit most frequent
// terms, most frequent first with ties in alphabetical order. Stop words,
// punctuation and single characters are not counted. A limit of 0 or less
// returns every term.
func TermFrequency(normaliser driven.TextNormaliser, comments []string, limit int) []domain.TermCount {
	counts := make(map[string]int)
	for _, c := range comments {
		for _, tok := range strings.Fields(normaliser.Normalise(c)) {
			tok = strings.Trim(tok, termPunctuation)
			if utf8.RuneCountInString(tok) < 2 || normaliser.IsStopWord(tok) {
				continue
			}
			counts[tok]++
		}
	}

	terms := make([]domain.TermCount, 0, len(counts))
	for term, n := range counts {
		terms = append(terms, domain.TermCount{Term: term, Count: n})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
