package httpapi

import (
	"net/http"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// StatusFor maps an error to an HTTP status code.
func StatusFor(err error) int {
	switch domain.FailureOf(err) {
	case domain.FailureNone:
		return http.StatusOK
	case domain.FailureInvalidInput:
		return http.StatusBadRequest
	case domain.FailureCommentsDisabled:
		return http.StatusForbidden
	case domain.FailureContentNotFound, domain.FailureEmpty, domain.FailureNotFound:
		return http.StatusNotFound
	case domain.FailureQuotaExceeded:
		return http.StatusTooManyRequests
	case domain.FailureTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// writeError writes {"error": msg, "kind": kind}. Internal failures are logged.
func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{
		Error: domain.UserMessage(err),
		Kind:  domain.FailureOf(err).String(),
	})
}
