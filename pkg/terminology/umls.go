package terminology

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eligius-health/eligius/pkg/models"
)

// UMLSClient searches the UTS REST API. One search serves both the UMLS CUI
// and, when the result set carries SNOMED source codes, the SNOMED pathway.
type UMLSClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewUMLSClient creates a UMLS client. Missing apiKey makes every search fail
// with an auth-severity error so the breaker opens fast instead of hammering
// the service.
func NewUMLSClient(baseURL, apiKey string, httpClient *http.Client) *UMLSClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &UMLSClient{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

type umlsSearchResponse struct {
	Result struct {
		Results []struct {
			UI         string `json:"ui"`
			Name       string `json:"name"`
			RootSource string `json:"rootSource"`
		} `json:"results"`
	} `json:"result"`
}

// Search implements Client.
func (c *UMLSClient) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	if c.apiKey == "" {
		return nil, &ServiceError{
			System: string(models.SystemUMLS),
			Status: http.StatusUnauthorized,
			Err:    fmt.Errorf("UMLS_API_KEY not configured"),
		}
	}

	u := fmt.Sprintf("%s/search/current?string=%s&pageSize=%d&apiKey=%s",
		c.baseURL, url.QueryEscape(term), limit, url.QueryEscape(c.apiKey))

	var resp umlsSearchResponse
	if err := getJSON(ctx, c.httpClient, string(models.SystemUMLS), u, nil, &resp); err != nil {
		return nil, err
	}

	normalized := NormalizeTerm(term)
	var candidates []Candidate
	for i, item := range resp.Result.Results {
		// UTS returns a "NONE" placeholder row for empty result sets.
		if item.UI == "" || item.UI == "NONE" {
			continue
		}
		confidence := 0.85 - 0.05*float64(i)
		if NormalizeTerm(item.Name) == normalized {
			confidence = 1.0
		}
		candidates = append(candidates, Candidate{
			Code:         item.UI,
			Display:      item.Name,
			System:       models.SystemUMLS,
			Confidence:   confidence,
			SemanticType: item.RootSource,
		})
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}

// SNOMEDCode fetches the SNOMED CT code for a CUI via its atoms. A missing
// SNOMED mapping returns empty without error.
func (c *UMLSClient) SNOMEDCode(ctx context.Context, cui string) (string, error) {
	u := fmt.Sprintf("%s/content/current/CUI/%s/atoms?sabs=SNOMEDCT_US&pageSize=1&apiKey=%s",
		c.baseURL, url.PathEscape(cui), url.QueryEscape(c.apiKey))

	var resp struct {
		Result []struct {
			Code string `json:"code"`
		} `json:"result"`
	}
	if err := getJSON(ctx, c.httpClient, string(models.SystemUMLS), u, nil, &resp); err != nil {
		var se *ServiceError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return "", nil
		}
		return "", err
	}
	if len(resp.Result) == 0 {
		return "", nil
	}
	// The atoms endpoint returns a code URI; the SNOMED concept id is the
	// final path segment.
	code := resp.Result[0].Code
	for i := len(code) - 1; i >= 0; i-- {
		if code[i] == '/' {
			return code[i+1:], nil
		}
	}
	return code, nil
}
