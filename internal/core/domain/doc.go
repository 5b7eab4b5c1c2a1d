// Package domain defines the core entities of the Satya sentiment pipeline.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - RawComment: A comment as returned by the comment source
//   - FeatureMatrix: Fixed-width numeric rows produced by the vectorizer
//   - Prediction: A sentiment label and its confidence
//   - AnalysisRecord: One output row of an analysis
//   - TrendBucket: Monthly sentiment percentages
//   - AnalysisRun: A persisted analysis of one video
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
