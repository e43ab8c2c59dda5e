package terminology

import (
	"context"
	"time"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// resilientClient decorates a raw terminology client with the shared cache,
// a per-system circuit breaker, a per-call timeout, and retry with full
// jitter. Every client the router consults goes through this wrapper.
type resilientClient struct {
	system   models.TerminologySystem
	inner    Client
	cache    *Cache
	breakers *resilience.Registry
	timeout  time.Duration
	retry    resilience.RetryConfig
}

// SNOMEDCrosswalker resolves a UMLS CUI to its SNOMED CT concept id. An empty
// id without error means the concept has no SNOMED mapping.
type SNOMEDCrosswalker interface {
	SNOMEDCode(ctx context.Context, cui string) (string, error)
}

// WrapClient applies the standard resilience decoration to a raw client.
func WrapClient(system models.TerminologySystem, inner Client, cache *Cache, breakers *resilience.Registry, timeout time.Duration, retry resilience.RetryConfig) Client {
	return &resilientClient{
		system:   system,
		inner:    inner,
		cache:    cache,
		breakers: breakers,
		timeout:  timeout,
		retry:    retry,
	}
}

func (c *resilientClient) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	normalized := NormalizeTerm(term)
	if candidates, ok := c.cache.Get(ctx, c.system, normalized); ok {
		return candidates, nil
	}

	var candidates []Candidate
	err := resilience.Retry(ctx, c.retry, retryable, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		result, err := c.breakers.Execute(string(c.system), func() (interface{}, error) {
			return c.inner.Search(callCtx, term, limit)
		})
		if err != nil {
			return err
		}
		candidates = result.([]Candidate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Put(ctx, c.system, normalized, candidates)
	return candidates, nil
}

// SNOMEDCode routes the CUI crosswalk through the same cache, breaker and
// retry as Search. The breaker is shared with the search pathway: a UMLS
// outage trips both at once.
func (c *resilientClient) SNOMEDCode(ctx context.Context, cui string) (string, error) {
	inner, ok := c.inner.(SNOMEDCrosswalker)
	if !ok {
		return "", nil
	}

	key := "snomed-of:" + cui
	if cached, ok := c.cache.Get(ctx, c.system, key); ok {
		if len(cached) == 0 {
			return "", nil
		}
		return cached[0].Code, nil
	}

	var code string
	err := resilience.Retry(ctx, c.retry, retryable, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		result, err := c.breakers.Execute(string(c.system), func() (interface{}, error) {
			return inner.SNOMEDCode(callCtx, cui)
		})
		if err != nil {
			return err
		}
		code = result.(string)
		return nil
	})
	if err != nil {
		return "", err
	}

	// Negative results are cached too; a missing mapping is stable.
	var cached []Candidate
	if code != "" {
		cached = []Candidate{{Code: code, System: c.system}}
	}
	c.cache.Put(ctx, c.system, key, cached)
	return code, nil
}
