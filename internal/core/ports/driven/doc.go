// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CommentSource: Fetches top-level comments for a video
//   - TextNormaliser: Cleans comment text before vectorisation
//   - Vectorizer: Turns normalised text into a fixed-width feature matrix
//   - Classifier: Predicts a sentiment label per feature row
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProbabilityEstimator: Implemented by classifiers that expose class
//     probabilities. Without it every prediction has confidence 1.0.
//   - AnalysisRunStore: Analysis history. Without it runs are not persisted.
//   - TokenProvider: OAuth access tokens. Without it the API key is used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
