package terminology

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eligius-health/eligius/pkg/models"
)

// LOINCClient searches lab test codes via the LOINC FHIR terminology server.
type LOINCClient struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewLOINCClient creates a LOINC client. Credentials are optional; the
// public server rejects unauthenticated expansion, so an empty username
// effectively disables the system.
func NewLOINCClient(baseURL, username, password string, httpClient *http.Client) *LOINCClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LOINCClient{baseURL: baseURL, username: username, password: password, httpClient: httpClient}
}

type loincExpansion struct {
	Expansion struct {
		Contains []struct {
			Code    string `json:"code"`
			Display string `json:"display"`
		} `json:"contains"`
	} `json:"expansion"`
}

// Search implements Client via a filtered ValueSet $expand.
func (c *LOINCClient) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	u := fmt.Sprintf("%s/ValueSet/$expand?url=%s&filter=%s&count=%d",
		c.baseURL,
		url.QueryEscape("http://loinc.org/vs"),
		url.QueryEscape(term), limit)

	header := http.Header{}
	if c.username != "" {
		header.Set("Authorization", "Basic "+
			base64.StdEncoding.EncodeToString([]byte(c.username+":"+c.password)))
	}

	var resp loincExpansion
	if err := getJSON(ctx, c.httpClient, string(models.SystemLOINC), u, header, &resp); err != nil {
		return nil, err
	}

	normalized := NormalizeTerm(term)
	var candidates []Candidate
	for i, item := range resp.Expansion.Contains {
		confidence := 0.85 - 0.05*float64(i)
		if NormalizeTerm(item.Display) == normalized {
			confidence = 1.0
		}
		candidates = append(candidates, Candidate{
			Code:       item.Code,
			Display:    item.Display,
			System:     models.SystemLOINC,
			Confidence: confidence,
		})
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}
