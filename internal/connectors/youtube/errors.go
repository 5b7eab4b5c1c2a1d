package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// API error reasons reported in errors[].reason.
const (
	ReasonCommentsDisabled   = "commentsDisabled"
	ReasonVideoNotFound      = "videoNotFound"
	ReasonQuotaExceeded      = "quotaExceeded"
	ReasonRateLimitExceeded  = "rateLimitExceeded"
	ReasonDailyLimitExceeded = "dailyLimitExceeded"
)

// Reason returns the first error reason of a Google API error, or "".
func Reason(err error) string {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return ""
	}
	for _, item := range gerr.Errors {
		if item.Reason != "" {
			return item.Reason
		}
	}
	return ""
}

// IsRateLimited returns true if the error is an HTTP 429 or a rate limit reason.
func IsRateLimited(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusTooManyRequests || Reason(err) == ReasonRateLimitExceeded
}

// WrapError converts an API error into a domain failure.
//
// The reason field decides the failure; HTTP status codes alone are
// ambiguous (comments disabled and quota exhaustion are both 403). Any
// error without a recognised reason, including network failures and
// undecodable responses, becomes ErrTransport.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	switch Reason(err) {
	case ReasonCommentsDisabled:
		return fmt.Errorf("%w: %w", domain.ErrCommentsDisabled, err)
	case ReasonVideoNotFound:
		return fmt.Errorf("%w: %w", domain.ErrContentNotFound, err)
	case ReasonQuotaExceeded, ReasonRateLimitExceeded, ReasonDailyLimitExceeded:
		return fmt.Errorf("%w: %w", domain.ErrQuotaExceeded, err)
	}

	if IsRateLimited(err) {
		return fmt.Errorf("%w: %w", domain.ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrTransport, err)
}
