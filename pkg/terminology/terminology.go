// Package terminology grounds extracted medical entities against controlled
// terminologies (RxNorm, ICD-10-CM, LOINC, HPO, UMLS/SNOMED). A fixed routing
// table maps entity types to the systems worth consulting; each system has a
// small HTTP client wrapped with caching, retry and a circuit breaker.
package terminology

import (
	"context"
	"strings"

	"github.com/eligius-health/eligius/pkg/models"
)

// Candidate is one code proposed by a terminology system for a search term.
type Candidate struct {
	Code         string                   `json:"code"`
	Display      string                   `json:"display"`
	System       models.TerminologySystem `json:"system"`
	Confidence   float64                  `json:"confidence"`
	SemanticType string                   `json:"semantic_type,omitempty"`
}

// Client searches one terminology system. An empty candidate slice means
// "no match" and is not an error.
type Client interface {
	Search(ctx context.Context, term string, limit int) ([]Candidate, error)
}

// RoutingTable maps entity types to terminology systems in priority order.
// Demographic entities have no route: age and sex constraints are structural,
// not codeable.
var RoutingTable = map[models.EntityType][]models.TerminologySystem{
	models.EntityMedication: {models.SystemRxNorm, models.SystemUMLS},
	models.EntityCondition:  {models.SystemUMLS, models.SystemICD10},
	models.EntityProcedure:  {models.SystemUMLS},
	models.EntityLabValue:   {models.SystemLOINC, models.SystemUMLS},
	models.EntityBiomarker:  {models.SystemUMLS, models.SystemHPO},
}

// NormalizeTerm lower-cases and collapses whitespace so cache keys and fuzzy
// comparisons are stable across extraction runs.
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}
