package terminology

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/eligius-health/eligius/pkg/models"
)

// RxNormClient searches the RxNav approximateTerm endpoint for drug names.
type RxNormClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRxNormClient creates an RxNorm client against the given RxNav base URL.
func NewRxNormClient(baseURL string, httpClient *http.Client) *RxNormClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RxNormClient{baseURL: baseURL, httpClient: httpClient}
}

type rxnormResponse struct {
	ApproximateGroup struct {
		Candidate []struct {
			RxCUI string `json:"rxcui"`
			Score string `json:"score"`
			Name  string `json:"name"`
		} `json:"candidate"`
	} `json:"approximateGroup"`
}

// Search implements Client. RxNav scores candidates 0..100.
func (c *RxNormClient) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	u := fmt.Sprintf("%s/approximateTerm.json?term=%s&maxEntries=%d",
		c.baseURL, url.QueryEscape(term), limit)

	var resp rxnormResponse
	if err := getJSON(ctx, c.httpClient, string(models.SystemRxNorm), u, nil, &resp); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var candidates []Candidate
	for _, cand := range resp.ApproximateGroup.Candidate {
		if cand.RxCUI == "" || seen[cand.RxCUI] {
			continue
		}
		seen[cand.RxCUI] = true

		score, err := strconv.ParseFloat(cand.Score, 64)
		if err != nil {
			score = 0
		}
		candidates = append(candidates, Candidate{
			Code:       cand.RxCUI,
			Display:    cand.Name,
			System:     models.SystemRxNorm,
			Confidence: score / 100.0,
		})
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}
