// Package comment normalises YouTube comment text before vectorisation.
//
// The transformation is deterministic and applied in a fixed order:
//
//  1. Lowercase
//  2. Trim leading and trailing whitespace
//  3. Replace newlines with spaces
//  4. Drop every character that is not an ASCII letter or digit,
//     whitespace, or one of ! ? . ,
//  5. Split on whitespace and drop English stop words, except the
//     polarity words not, but, however, no and yet
//  6. Lemmatise each remaining token
//  7. Join with single spaces
//
// Normalise never fails. If any step panics the original text is returned.
package comment
