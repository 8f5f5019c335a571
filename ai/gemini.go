package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"ink-functions/contract"
	"ink-functions/errors"
	"net/http"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-pro"

// GeminiFactory builds one Gemini client per API key.
// The key belongs to the caller, so clients are never shared between invocations.
type GeminiFactory struct {
	model   string
	baseURL string
}

type FactoryOption func(*GeminiFactory)

// WithBaseURL points the client at another endpoint (tests, proxies).
func WithBaseURL(baseURL string) FactoryOption {
	return func(f *GeminiFactory) { f.baseURL = baseURL }
}

func NewGeminiFactory(model string, opts ...FactoryOption) *GeminiFactory {
	if model == "" {
		model = DefaultModel
	}
	f := &GeminiFactory{model: model}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Model returns the configured model name.
func (f *GeminiFactory) Model() string {
	return f.model
}

func (f *GeminiFactory) NewModel(ctx context.Context, apiKey string) (contract.Model, error) {
	if apiKey == "" {
		return nil, &errors.ValidationError{Field: "apiKey", Reason: "is required"}
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if f.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: f.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, &errors.TransportError{Service: "gemini", Err: fmt.Errorf("failed to create client: %w", err)}
	}
	return &geminiModel{client: client, model: f.model}, nil
}

type geminiModel struct {
	client *genai.Client
	model  string
}

// Generate sends the prompt as a single user turn and returns the concatenated text parts.
func (m *geminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err, m.model)
	}
	return resp.Text(), nil
}

// classify turns provider failures into the project error kinds.
// A 404 or a NOT_FOUND status means the model name or key is wrong.
func classify(err error, model string) error {
	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound || apiErr.Status == "NOT_FOUND" {
			return &errors.NotFoundError{Model: model}
		}
		return &errors.TransportError{Service: "gemini", Err: err}
	}
	return errors.FromProvider(err, "gemini", model)
}
