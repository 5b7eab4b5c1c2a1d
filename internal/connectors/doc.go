// Package connectors holds the comment sources the analysis pipeline
// reads from. Each source implements driven.CommentSource.
//
//   - youtube: top-level comment threads via the YouTube Data API v3
package connectors
