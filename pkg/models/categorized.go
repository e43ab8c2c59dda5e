package models

import "fmt"

// CategorizedError attaches an ErrorCategory to an underlying failure so the
// outbox retry policy and the protocol error_reason can be derived without
// string matching.
type CategorizedError struct {
	Category ErrorCategory
	Err      error
}

func (e *CategorizedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Category, e.Err)
	}
	return string(e.Category)
}

func (e *CategorizedError) Unwrap() error { return e.Err }

// NewCategorizedError wraps err with a category.
func NewCategorizedError(category ErrorCategory, err error) *CategorizedError {
	return &CategorizedError{Category: category, Err: err}
}
