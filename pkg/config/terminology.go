package config

import (
	"os"
	"time"
)

// TerminologyConfig controls the terminology clients and their shared cache.
type TerminologyConfig struct {
	// RequestTimeout bounds one terminology HTTP call.
	RequestTimeout time.Duration

	// RetryAttempts, RetryBackoffBase and RetryBackoffMax control the
	// per-call retry on transient failures (429, 5xx, connect/read errors).
	RetryAttempts    int
	RetryBackoffBase time.Duration
	RetryBackoffMax  time.Duration

	// CacheTTL is the lifetime of cached search results.
	CacheTTL time.Duration

	// SearchLimit is the candidate-list size requested from each client.
	SearchLimit int

	// ConfidenceFloor: router results below it are flagged for reviewer
	// attention (codes still persist).
	ConfidenceFloor float64

	// Service endpoints. Defaults point at the public instances.
	RxNormBaseURL string
	ICD10BaseURL  string
	LOINCBaseURL  string
	HPOBaseURL    string
	UMLSBaseURL   string

	// UMLSAPIKey authenticates the delegated UMLS/SNOMED client.
	UMLSAPIKey string

	// LOINCUsername and LOINCPassword authenticate the LOINC FHIR server.
	// Empty credentials leave the system configured but effectively disabled.
	LOINCUsername string
	LOINCPassword string
}

// DefaultTerminologyConfig returns the built-in terminology defaults with
// credential overrides from the environment.
func DefaultTerminologyConfig() *TerminologyConfig {
	return &TerminologyConfig{
		RequestTimeout:   10 * time.Second,
		RetryAttempts:    3,
		RetryBackoffBase: 500 * time.Millisecond,
		RetryBackoffMax:  2 * time.Second,
		CacheTTL:         7 * 24 * time.Hour,
		SearchLimit:      5,
		ConfidenceFloor:  0.7,

		RxNormBaseURL: getEnvOrDefault("RXNORM_BASE_URL", "https://rxnav.nlm.nih.gov/REST"),
		ICD10BaseURL:  getEnvOrDefault("ICD10_BASE_URL", "https://clinicaltables.nlm.nih.gov/api/icd10cm/v3"),
		LOINCBaseURL:  getEnvOrDefault("LOINC_BASE_URL", "https://fhir.loinc.org"),
		HPOBaseURL:    getEnvOrDefault("HPO_BASE_URL", "https://ontology.jax.org/api"),
		UMLSBaseURL:   getEnvOrDefault("UMLS_BASE_URL", "https://uts-ws.nlm.nih.gov/rest"),

		UMLSAPIKey:    os.Getenv("UMLS_API_KEY"),
		LOINCUsername: os.Getenv("LOINC_USERNAME"),
		LOINCPassword: os.Getenv("LOINC_PASSWORD"),
	}
}
