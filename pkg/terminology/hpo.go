package terminology

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eligius-health/eligius/pkg/models"
)

// HPOClient searches phenotype terms via the JAX ontology API.
type HPOClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHPOClient creates an HPO client against the given base URL.
func NewHPOClient(baseURL string, httpClient *http.Client) *HPOClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HPOClient{baseURL: baseURL, httpClient: httpClient}
}

type hpoResponse struct {
	Terms []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"terms"`
}

// Search implements Client.
func (c *HPOClient) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	u := fmt.Sprintf("%s/hp/search?q=%s&limit=%d",
		c.baseURL, url.QueryEscape(term), limit)

	var resp hpoResponse
	if err := getJSON(ctx, c.httpClient, string(models.SystemHPO), u, nil, &resp); err != nil {
		return nil, err
	}

	normalized := NormalizeTerm(term)
	var candidates []Candidate
	for i, item := range resp.Terms {
		confidence := 0.85 - 0.05*float64(i)
		if NormalizeTerm(item.Name) == normalized {
			confidence = 1.0
		}
		candidates = append(candidates, Candidate{
			Code:       item.ID,
			Display:    item.Name,
			System:     models.SystemHPO,
			Confidence: confidence,
		})
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}
