package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// GeminiExtractor extracts criteria with a Gemini model. Calls run through
// the shared "gemini" breaker under a configurable timeout.
type GeminiExtractor struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	breakers *resilience.Registry
	logger   *slog.Logger
}

// NewGeminiExtractor creates the production extractor.
func NewGeminiExtractor(ctx context.Context, apiKey, model string, timeout time.Duration, breakers *resilience.Registry, logger *slog.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiExtractor{
		client:   client,
		model:    model,
		timeout:  timeout,
		breakers: breakers,
		logger:   logger,
	}, nil
}

// Extract implements Extractor.
func (e *GeminiExtractor) Extract(ctx context.Context, pdf []byte, title string) ([]models.ExtractedCriterion, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	result, err := e.breakers.Execute("gemini", func() (interface{}, error) {
		model := e.client.GenerativeModel(e.model)
		model.ResponseMIMEType = "application/json"

		return model.GenerateContent(callCtx,
			genai.Text(extractionPrompt+"\n\nProtocol title: "+title),
			genai.Blob{MIMEType: "application/pdf", Data: pdf},
		)
	})
	if err != nil {
		return nil, categorizeLLMError(err, callCtx)
	}

	resp := result.(*genai.GenerateContentResponse)
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	criteria, err := parseExtraction([]byte(raw))
	if err != nil {
		return nil, err
	}

	if e.logger != nil {
		e.logger.Info("Extraction complete",
			slog.String("model", e.model),
			slog.Int("criteria", len(criteria)),
			slog.Duration("duration", time.Since(start)))
	}
	return criteria, nil
}

// Model returns the configured model name, recorded on the criteria batch.
func (e *GeminiExtractor) Model() string { return e.model }

// Close releases the underlying client.
func (e *GeminiExtractor) Close() error { return e.client.Close() }

// responseText flattens the first candidate's text parts.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", models.NewCategorizedError(models.ErrorLLMSchemaViolation,
			fmt.Errorf("model returned no candidates"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", models.NewCategorizedError(models.ErrorLLMSchemaViolation,
			fmt.Errorf("model returned no text parts"))
	}
	return sb.String(), nil
}

func categorizeLLMError(err error, callCtx context.Context) error {
	switch {
	case errors.Is(err, resilience.ErrBreakerOpen):
		return models.NewCategorizedError(models.ErrorBreakerOpen, err)
	case errors.Is(callCtx.Err(), context.DeadlineExceeded):
		return models.NewCategorizedError(models.ErrorTimeout, err)
	default:
		return models.NewCategorizedError(models.ErrorLLMUnavailable, err)
	}
}
