package store

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The error kinds the rest of the service distinguishes. Anything that is
// not a permission or quota problem collapses into ErrConnection.
var (
	ErrPermissionDenied = errors.New("store: permission denied")
	ErrQuotaExceeded    = errors.New("store: quota exceeded")
	ErrConnection       = errors.New("store: connection error")
)

// Classify maps a Firestore error onto one of the sentinel kinds, keeping
// the original message for logs.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	default:
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
}

// HTTPStatus maps a classified store error onto the response code handlers
// report: permission problems are for the operator to fix in the store
// rules, quota problems are retryable, everything else is a bad gateway.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrConnection):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
