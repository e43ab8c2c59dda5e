package terminology

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// Router grounds entities by consulting the terminology systems routed for
// their type, in priority order. A system failing does not fail the entity
// as long as any routed system produced a candidate; an entity with every
// system failing still does not fail the batch.
type Router struct {
	clients         map[models.TerminologySystem]Client
	crosswalk       SNOMEDCrosswalker
	fanOut          int
	confidenceFloor float64
	searchLimit     int
	logger          *slog.Logger
}

// NewRouter builds the production router: five concrete clients wrapped with
// cache, breaker and retry. rdb may be nil to run without a cache.
func NewRouter(cfg *config.TerminologyConfig, fanOut int, breakers *resilience.Registry, rdb *redis.Client, logger *slog.Logger) *Router {
	cache := NewCache(rdb, cfg.CacheTTL, logger)
	retry := resilience.RetryConfig{
		Attempts:    cfg.RetryAttempts,
		BackoffBase: cfg.RetryBackoffBase,
		BackoffMax:  cfg.RetryBackoffMax,
	}
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	wrap := func(system models.TerminologySystem, raw Client) Client {
		return WrapClient(system, raw, cache, breakers, cfg.RequestTimeout, retry)
	}
	umls := wrap(models.SystemUMLS, NewUMLSClient(cfg.UMLSBaseURL, cfg.UMLSAPIKey, httpClient))

	return &Router{
		clients: map[models.TerminologySystem]Client{
			models.SystemRxNorm: wrap(models.SystemRxNorm, NewRxNormClient(cfg.RxNormBaseURL, httpClient)),
			models.SystemICD10:  wrap(models.SystemICD10, NewICD10Client(cfg.ICD10BaseURL, httpClient)),
			models.SystemLOINC:  wrap(models.SystemLOINC, NewLOINCClient(cfg.LOINCBaseURL, cfg.LOINCUsername, cfg.LOINCPassword, httpClient)),
			models.SystemHPO:    wrap(models.SystemHPO, NewHPOClient(cfg.HPOBaseURL, httpClient)),
			models.SystemUMLS:   umls,
		},
		crosswalk:       umls.(SNOMEDCrosswalker),
		fanOut:          fanOut,
		confidenceFloor: cfg.ConfidenceFloor,
		searchLimit:     cfg.SearchLimit,
		logger:          logger,
	}
}

// NewRouterWithClients builds a router over pre-wrapped clients (tests). The
// UMLS client serves the SNOMED crosswalk when it implements it.
func NewRouterWithClients(clients map[models.TerminologySystem]Client, fanOut int, confidenceFloor float64, searchLimit int, logger *slog.Logger) *Router {
	crosswalk, _ := clients[models.SystemUMLS].(SNOMEDCrosswalker)
	return &Router{
		clients:         clients,
		crosswalk:       crosswalk,
		fanOut:          fanOut,
		confidenceFloor: confidenceFloor,
		searchLimit:     searchLimit,
		logger:          logger,
	}
}

// Ground resolves one entity against its routed terminology systems.
func (r *Router) Ground(ctx context.Context, text string, entityType models.EntityType) models.GroundingResult {
	route := RoutingTable[entityType]
	if len(route) == 0 {
		return models.GroundingResult{
			Method: "not_routable",
			Error:  fmt.Sprintf("Entity type '%s' not routable", entityType),
		}
	}

	bySystem := make(map[models.TerminologySystem]Candidate)
	var failures []error
	for _, system := range route {
		client, ok := r.clients[system]
		if !ok {
			continue
		}
		candidates, err := client.Search(ctx, text, r.searchLimit)
		if err != nil {
			failures = append(failures, err)
			if r.logger != nil {
				r.logger.Warn("Terminology search failed",
					slog.String("system", string(system)),
					slog.String("term", text),
					slog.String("error", err.Error()))
			}
			continue
		}
		if best, ok := bestCandidate(candidates); ok {
			bySystem[system] = best
		}
	}

	if len(bySystem) == 0 {
		if len(failures) > 0 && len(failures) == routedClientCount(r, route) {
			// Total failure: report the most actionable error.
			return models.GroundingResult{
				Method:      "terminology_search",
				Error:       worstFailure(failures).Error(),
				NeedsReview: true,
			}
		}
		return models.GroundingResult{
			Method:      "no_match",
			NeedsReview: true,
		}
	}

	// grounding_system is the highest-priority routed system that answered.
	var chosen models.TerminologySystem
	for _, system := range route {
		if _, ok := bySystem[system]; ok {
			chosen = system
			break
		}
	}
	best := bySystem[chosen]

	result := models.GroundingResult{
		System:      &chosen,
		Confidence:  best.Confidence,
		Method:      "terminology_search",
		NeedsReview: best.Confidence < r.confidenceFloor,
	}
	for system, candidate := range bySystem {
		setCode(&result.Codes, system, candidate)
	}
	result.Codes.PreferredTerm = strPtr(best.Display)

	// The delegated UMLS pathway can also produce the SNOMED code.
	if r.crosswalk != nil && result.Codes.UMLSCUI != nil && result.Codes.SNOMED == nil {
		if code, err := r.crosswalk.SNOMEDCode(ctx, *result.Codes.UMLSCUI); err == nil && code != "" {
			result.Codes.SNOMED = &code
		}
	}

	return result
}

// GroundInput pairs an entity's text with its type for batch grounding.
type GroundInput struct {
	Text       string
	EntityType models.EntityType
}

// GroundBatch grounds entities with bounded parallelism. It never returns an
// error for grounding failures; results line up with inputs by index.
func (r *Router) GroundBatch(ctx context.Context, inputs []GroundInput) []models.GroundingResult {
	results := make([]models.GroundingResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.fanOut)
	for i, input := range inputs {
		g.Go(func() error {
			results[i] = r.Ground(gctx, input.Text, input.EntityType)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func bestCandidate(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	return sorted[0], true
}

func routedClientCount(r *Router, route []models.TerminologySystem) int {
	n := 0
	for _, system := range route {
		if _, ok := r.clients[system]; ok {
			n++
		}
	}
	return n
}

func worstFailure(failures []error) error {
	worst := failures[0]
	for _, err := range failures[1:] {
		if Classify(err) > Classify(worst) {
			worst = err
		}
	}
	return worst
}

func setCode(codes *models.TerminologyCodes, system models.TerminologySystem, candidate Candidate) {
	switch system {
	case models.SystemRxNorm:
		codes.RxNorm = strPtr(candidate.Code)
	case models.SystemICD10:
		codes.ICD10 = strPtr(candidate.Code)
	case models.SystemLOINC:
		codes.LOINC = strPtr(candidate.Code)
	case models.SystemHPO:
		codes.HPO = strPtr(candidate.Code)
	case models.SystemUMLS:
		codes.UMLSCUI = strPtr(candidate.Code)
	}
}

func strPtr(s string) *string { return &s }
