// Package pipeline runs the extraction state machine for one protocol:
// ingest -> extract -> parse -> ground -> persist. Nodes are pure functions
// over a JSON-serializable state; the driver checkpoints the state after
// every node so a killed run resumes from the last committed step.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eligius-health/eligius/pkg/models"
)

// StateError is a node failure recorded in the state. Nodes never panic or
// abort the run themselves; the driver reads the error and routes to the end.
// Failed steps are not checkpointed, so a resume re-runs the failing node.
type StateError struct {
	Category models.ErrorCategory `json:"category"`
	Message  string               `json:"message"`
	// Node is filled in by the driver.
	Node string `json:"node,omitempty"`
}

// State is the full pipeline state for one run. Everything in it must
// round-trip through JSON, because the checkpoint store persists snapshots
// between nodes.
type State struct {
	ProtocolID  string `json:"protocol_id"`
	Title       string `json:"title"`
	FilePointer string `json:"file_pointer"`

	// PDF holds the raw document between ingest and extract. The extract
	// node clears it before its checkpoint so snapshots stay small.
	PDF         []byte `json:"pdf,omitempty"`
	ContentType string `json:"content_type,omitempty"`

	ExtractionModel string                      `json:"extraction_model,omitempty"`
	Criteria        []models.ExtractedCriterion `json:"criteria,omitempty"`

	// Groundings aligns with Criteria: Groundings[i][j] is the result for
	// Criteria[i].Entities[j]. Populated by the ground node.
	Groundings [][]models.GroundingResult `json:"groundings,omitempty"`

	BatchID string `json:"batch_id,omitempty"`

	Error *StateError `json:"error,omitempty"`
}

// Fail records a node failure on the state.
func (s *State) Fail(category models.ErrorCategory, format string, args ...interface{}) {
	s.Error = &StateError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewThreadID mints a pipeline thread id for a protocol run. The protocol id
// prefix lets maintenance jobs find every thread belonging to a protocol.
func NewThreadID(protocolID string) string {
	return protocolID + ":" + uuid.NewString()
}
