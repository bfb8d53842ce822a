package labelapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is returned when a print request fails validation
var ErrInvalidRequest = errors.New("invalid print request")

// StatusError is returned when the label server answers with a non-success
// status and no structured body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("label server returned status %d", e.Code)
	}
	return fmt.Sprintf("label server returned status %d: %s", e.Code, e.Message)
}

// IsTimeout reports whether err was caused by a request deadline
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// Describe returns a short user-facing message for err
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if IsTimeout(err) {
		return "request timed out"
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	return strings.TrimSpace(err.Error())
}
