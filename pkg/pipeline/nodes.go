package pipeline

import (
	"bytes"
	"context"
	"errors"

	"github.com/eligius-health/eligius/pkg/llm"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/objectstore"
	"github.com/eligius-health/eligius/pkg/terminology"
)

// Node names, in execution order.
const (
	NodeIngest  = "ingest"
	NodeExtract = "extract"
	NodeParse   = "parse"
	NodeGround  = "ground"
	NodePersist = "persist"
)

// MaxPDFBytes is the ingest size ceiling.
const DefaultMaxPDFBytes = 50 << 20

// Grounder resolves entity terms to terminology codes. Implemented by
// terminology.Router.
type Grounder interface {
	GroundBatch(ctx context.Context, inputs []terminology.GroundInput) []models.GroundingResult
}

// Persister writes the completed extraction to the database in one
// transaction and returns the new batch id. Implemented by the batch writer
// in the services layer.
type Persister interface {
	PersistBatch(ctx context.Context, state *State) (string, error)
}

// Node is one step of the pipeline. Run mutates the state in place and
// records failures via State.Fail; it never returns an error.
type Node struct {
	Name string
	Run  func(ctx context.Context, state *State)
}

// IngestNode fetches the document and validates it is a usable PDF.
func IngestNode(store objectstore.Store, maxBytes int64) Node {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPDFBytes
	}
	return Node{
		Name: NodeIngest,
		Run: func(ctx context.Context, state *State) {
			data, contentType, err := store.Fetch(ctx, state.FilePointer)
			if err != nil {
				state.Fail(categoryOf(err, models.ErrorStorage), "failed to fetch document: %v", err)
				return
			}
			if int64(len(data)) > maxBytes {
				state.Fail(models.ErrorPDFQuality, "document is %d bytes, limit is %d", len(data), maxBytes)
				return
			}
			if contentType != "" && contentType != "application/pdf" {
				state.Fail(models.ErrorPDFQuality, "unsupported content type %q", contentType)
				return
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				state.Fail(models.ErrorPDFQuality, "document is not a PDF")
				return
			}
			state.PDF = data
			state.ContentType = "application/pdf"
		},
	}
}

// ExtractNode runs the LLM extraction. It clears the PDF bytes from the
// state before returning so the post-node checkpoint stays small.
func ExtractNode(extractor llm.Extractor, modelName string) Node {
	return Node{
		Name: NodeExtract,
		Run: func(ctx context.Context, state *State) {
			if len(state.PDF) == 0 {
				state.Fail(models.ErrorPDFQuality, "no document bytes in state")
				return
			}

			criteria, err := extractor.Extract(ctx, state.PDF, state.Title)
			state.PDF = nil
			if err != nil {
				state.Fail(categoryOf(err, models.ErrorLLMUnavailable), "extraction failed: %v", err)
				return
			}
			state.Criteria = criteria
			state.ExtractionModel = modelName
		},
	}
}

// ParseNode normalizes the raw extraction: entity types derived from the
// criterion category when the model left them empty, default assertion
// status, dropped empty entities.
func ParseNode() Node {
	return Node{
		Name: NodeParse,
		Run: func(_ context.Context, state *State) {
			for i := range state.Criteria {
				criterion := &state.Criteria[i]
				if criterion.AssertionStatus == "" {
					criterion.AssertionStatus = models.AssertionPresent
				}

				kept := criterion.Entities[:0]
				for _, entity := range criterion.Entities {
					if entity.Text == "" {
						continue
					}
					if entity.Type == "" {
						entity.Type = models.CategoryEntityType(criterion.Category)
					}
					kept = append(kept, entity)
				}
				criterion.Entities = kept
			}
		},
	}
}

// GroundNode resolves every entity against the terminology router. Grounding
// failures are recorded per entity; the node itself succeeds even when every
// entity failed.
func GroundNode(grounder Grounder) Node {
	return Node{
		Name: NodeGround,
		Run: func(ctx context.Context, state *State) {
			var inputs []terminology.GroundInput
			for _, criterion := range state.Criteria {
				for _, entity := range criterion.Entities {
					inputs = append(inputs, terminology.GroundInput{
						Text:       entity.Text,
						EntityType: entity.Type,
					})
				}
			}

			flat := grounder.GroundBatch(ctx, inputs)

			state.Groundings = make([][]models.GroundingResult, len(state.Criteria))
			idx := 0
			for i, criterion := range state.Criteria {
				state.Groundings[i] = make([]models.GroundingResult, len(criterion.Entities))
				for j := range criterion.Entities {
					state.Groundings[i][j] = flat[idx]
					idx++
				}
			}
		},
	}
}

// PersistNode writes the batch, criteria and entities in one transaction and
// moves the protocol to pending_review.
func PersistNode(persister Persister) Node {
	return Node{
		Name: NodePersist,
		Run: func(ctx context.Context, state *State) {
			batchID, err := persister.PersistBatch(ctx, state)
			if err != nil {
				state.Fail(categoryOf(err, models.ErrorPipelineFailed), "failed to persist batch: %v", err)
				return
			}
			state.BatchID = batchID
		},
	}
}

// categoryOf pulls the category from a CategorizedError, falling back when
// the error is untyped.
func categoryOf(err error, fallback models.ErrorCategory) models.ErrorCategory {
	var ce *models.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return fallback
}
