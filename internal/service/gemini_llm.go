package service

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// GeminiLLM talks to the Gemini API with an API key. Like VertexLLM it
// creates its client lazily, so a missing key only shows up when the first
// prompt is sent.
type GeminiLLM struct {
	apiKey      string
	model       string
	temperature float32
	baseURL     string

	mu     sync.Mutex
	client *genai.Client
}

// GeminiOption customises NewGeminiLLM.
type GeminiOption func(*GeminiLLM)

// WithGeminiBaseURL points the client at a different endpoint.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(g *GeminiLLM) {
		g.baseURL = url
	}
}

// NewGeminiLLM returns a Gemini API client for model.
func NewGeminiLLM(apiKey, model string, temperature float32, opts ...GeminiOption) *GeminiLLM {
	g := &GeminiLLM{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GeminiLLM) genaiClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	if g.apiKey == "" {
		return nil, goerr.New("GEMINI_API_KEY is not set")
	}

	cfg := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}
	g.client = client
	return client, nil
}

// GenerateResponse sends prompt as a single user turn and returns the text
// of the first candidate.
func (g *GeminiLLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	client, err := g.genaiClient(ctx)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content", goerr.V("model", g.model))
	}

	text := resp.Text()
	if text == "" {
		return "", goerr.New("empty response from Gemini", goerr.V("model", g.model))
	}
	return text, nil
}
