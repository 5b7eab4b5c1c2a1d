// Package services implements the driving port interfaces.
// Services contain the analysis pipeline and its aggregations and
// orchestrate calls to driven ports (adapters).
//
// The aggregation helpers (JoinRecords, BucketByMonth, Summarise,
// TermFrequency) are pure functions and are exported for adapters that
// aggregate data they did not produce themselves.
package services
