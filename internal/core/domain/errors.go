package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Comment Source Errors.

	// ErrTransport indicates the comment API could not be reached or
	// returned a response that could not be parsed.
	ErrTransport = errors.New("comment source unavailable")

	// ErrContentNotFound indicates the requested video does not exist.
	ErrContentNotFound = errors.New("video not found")

	// ErrCommentsDisabled indicates the video owner has disabled comments.
	ErrCommentsDisabled = errors.New("comments are disabled for this video")

	// ErrQuotaExceeded indicates the API quota for the key is exhausted.
	ErrQuotaExceeded = errors.New("API quota exceeded, please try again later")

	// ErrEmptyResult indicates the video has no comments.
	// It is a terminal condition rather than a failure of the source.
	ErrEmptyResult = errors.New("no comments found for the provided video ID")

	// Model Errors.

	// ErrModelLoad indicates a vectorizer or classifier artifact could not be loaded.
	// It is fatal at startup.
	ErrModelLoad = errors.New("model load failed")

	// ErrAlignment indicates pipeline stages produced sequences of different
	// lengths. It signals a bug, never a user error.
	ErrAlignment = errors.New("pipeline stages out of alignment")
)

// FailureKind tags an error with its place in the analysis error taxonomy.
// Driving adapters switch on it to choose exit codes, HTTP statuses and messages.
type FailureKind int

const (
	// FailureNone means no error.
	FailureNone FailureKind = iota
	// FailureInvalidInput means the caller supplied a bad request.
	FailureInvalidInput
	// FailureTransport means the comment API failed.
	FailureTransport
	// FailureContentNotFound means the video does not exist.
	FailureContentNotFound
	// FailureCommentsDisabled means comments are turned off.
	FailureCommentsDisabled
	// FailureQuotaExceeded means the API quota is exhausted.
	FailureQuotaExceeded
	// FailureEmpty means the video had no comments.
	FailureEmpty
	// FailureModelLoad means an artifact failed to load.
	FailureModelLoad
	// FailureAlignment means an internal invariant was broken.
	FailureAlignment
	// FailureNotFound means a stored entity was not found.
	FailureNotFound
	// FailureInternal is any other error.
	FailureInternal
)

// String returns the snake_case name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureInvalidInput:
		return "invalid_input"
	case FailureTransport:
		return "transport_error"
	case FailureContentNotFound:
		return "content_not_found"
	case FailureCommentsDisabled:
		return "comments_disabled"
	case FailureQuotaExceeded:
		return "quota_exceeded"
	case FailureEmpty:
		return "empty_result"
	case FailureModelLoad:
		return "load_error"
	case FailureAlignment:
		return "alignment_error"
	case FailureNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

// FailureOf classifies err into the analysis error taxonomy.
// Wrapped errors are matched with errors.Is.
func FailureOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrInvalidInput):
		return FailureInvalidInput
	case errors.Is(err, ErrCommentsDisabled):
		return FailureCommentsDisabled
	case errors.Is(err, ErrContentNotFound):
		return FailureContentNotFound
	case errors.Is(err, ErrQuotaExceeded):
		return FailureQuotaExceeded
	case errors.Is(err, ErrEmptyResult):
		return FailureEmpty
	case errors.Is(err, ErrTransport):
		return FailureTransport
	case errors.Is(err, ErrModelLoad):
		return FailureModelLoad
	case errors.Is(err, ErrAlignment):
		return FailureAlignment
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	default:
		return FailureInternal
	}
}

// UserMessage returns the message shown to end users for err.
// Internal failures are not described in detail.
func UserMessage(err error) string {
	switch FailureOf(err) {
	case FailureNone:
		return ""
	case FailureCommentsDisabled:
		return "Comments are disabled for this video."
	case FailureContentNotFound:
		return "Video not found."
	case FailureQuotaExceeded:
		return "API Quota exceeded. Please try again later."
	case FailureEmpty:
		return "No comments found for the provided video ID."
	case FailureInvalidInput, FailureTransport, FailureNotFound:
		return err.Error()
	case FailureModelLoad, FailureAlignment:
		return "Prediction failed: internal error."
	default:
		return "Internal error."
	}
}
