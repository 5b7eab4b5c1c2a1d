// Package normalisers holds the text normalisers applied to comments
// before they reach the vectorizer.
//
//   - comment: lowercase, filter, stop-word removal and lemmatisation
package normalisers
