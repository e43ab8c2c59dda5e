package terminology

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eligius-health/eligius/pkg/models"
)

// ICD10Client searches the NLM Clinical Tables ICD-10-CM endpoint.
type ICD10Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewICD10Client creates an ICD-10-CM client against the given base URL.
func NewICD10Client(baseURL string, httpClient *http.Client) *ICD10Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ICD10Client{baseURL: baseURL, httpClient: httpClient}
}

// Search implements Client. The clinical tables API returns a positional
// array: [total, codes, extra, [[code, name], ...]].
func (c *ICD10Client) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	u := fmt.Sprintf("%s/search?sf=code,name&terms=%s&maxList=%d",
		c.baseURL, url.QueryEscape(term), limit)

	var raw []json.RawMessage
	if err := getJSON(ctx, c.httpClient, string(models.SystemICD10), u, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("unexpected icd10 response shape")
	}

	var pairs [][]string
	if err := json.Unmarshal(raw[3], &pairs); err != nil {
		return nil, fmt.Errorf("failed to decode icd10 display list: %w", err)
	}

	normalized := NormalizeTerm(term)
	var candidates []Candidate
	for i, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		// The API has no score; rank by position with a bonus for an exact
		// name match.
		confidence := 0.85 - 0.05*float64(i)
		if NormalizeTerm(pair[1]) == normalized {
			confidence = 1.0
		}
		candidates = append(candidates, Candidate{
			Code:       pair[0],
			Display:    pair[1],
			System:     models.SystemICD10,
			Confidence: confidence,
		})
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}
