// Package services implements the operations the API and the outbox handlers
// call: protocol submission and lifecycle, batch persistence, review
// decisions with inheritance, and audit reads.
package services

import "errors"

// Service-level sentinel errors. Handlers translate these to HTTP statuses.
var (
	// ErrProtocolNotFound indicates the protocol doesn't exist.
	ErrProtocolNotFound = errors.New("protocol not found")

	// ErrBatchNotFound indicates the protocol has no active criteria batch.
	ErrBatchNotFound = errors.New("criteria batch not found")

	// ErrCriterionNotFound indicates the criterion doesn't exist.
	ErrCriterionNotFound = errors.New("criterion not found")

	// ErrInvalidStatus indicates the operation is not allowed in the
	// protocol's current status.
	ErrInvalidStatus = errors.New("operation not allowed in current protocol status")

	// ErrRetryConflict indicates another retry (or the pipeline itself) is
	// already driving the protocol.
	ErrRetryConflict = errors.New("protocol is already being processed")

	// ErrInvalidDecision indicates an unknown review decision value.
	ErrInvalidDecision = errors.New("invalid review decision")
)
