package terminology

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/eligius-health/eligius/pkg/resilience"
)

// Severity ranks terminology failures so the router can report the most
// actionable one when every system fails. Higher is worse.
type Severity int

const (
	SeverityOther Severity = iota
	SeverityTimeout
	SeverityRateLimit
	SeverityUnavailable
	SeverityAuth
)

// ServiceError is an HTTP-level failure from one terminology service.
type ServiceError struct {
	System string
	Status int
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: status %d: %v", e.System, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.System, e.Status)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Classify maps an error to its severity bucket.
func Classify(err error) Severity {
	var se *ServiceError
	if errors.As(err, &se) {
		switch {
		case se.Status == 401 || se.Status == 403:
			return SeverityAuth
		case se.Status == 429:
			return SeverityRateLimit
		case se.Status >= 500:
			return SeverityUnavailable
		}
	}
	if errors.Is(err, resilience.ErrBreakerOpen) {
		return SeverityUnavailable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return SeverityTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return SeverityTimeout
	}
	return SeverityOther
}

// retryable reports whether a terminology call is worth retrying. Auth
// failures and schema-level problems are permanent.
func retryable(err error) bool {
	switch Classify(err) {
	case SeverityAuth:
		return false
	case SeverityTimeout, SeverityRateLimit, SeverityUnavailable:
		return true
	}
	var se *ServiceError
	if errors.As(err, &se) {
		// Remaining 4xx responses are permanent.
		return se.Status < 400
	}
	return true
}
