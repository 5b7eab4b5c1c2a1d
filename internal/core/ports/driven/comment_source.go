package driven

import (
	"context"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// VideoIDParser turns a user supplied video reference (an ID or a URL)
// into the canonical ID of the source. Invalid references return
// domain.ErrInvalidInput.
type VideoIDParser interface {
	ParseVideoID(ref string) (string, error)
}

// CommentSource fetches the top-level comments of a video.
//
// Implementations return comments in provider order and never more than
// their configured cap. Failures are reported with the domain sentinels
// ErrCommentsDisabled, ErrContentNotFound, ErrQuotaExceeded and
// ErrTransport. A video without comments yields an empty slice and a nil
// error; deciding that this is terminal is the caller's job.
type CommentSource interface {
	VideoIDParser

	Fetch(ctx context.Context, videoID string) ([]domain.RawComment, error)
}
