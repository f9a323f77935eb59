package service

import (
	"context"
	"strings"
	"sync"

	"cloud.google.com/go/vertexai/genai"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// VertexLLM implements the LLM interface using Google's Vertex AI.
// The client is created on first use so the server can start without
// credentials; a failed creation is retried on the next call.
type VertexLLM struct {
	projectID       string
	location        string
	modelName       string
	credentialsFile string
	temperature     float32

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewVertexLLM returns a Vertex AI client for the given project and model.
// credentialsFile may be empty to use application default credentials.
func NewVertexLLM(projectID, location, modelName, credentialsFile string, temperature float32) *VertexLLM {
	return &VertexLLM{
		projectID:       projectID,
		location:        location,
		modelName:       modelName,
		credentialsFile: credentialsFile,
		temperature:     temperature,
	}
}

func (l *VertexLLM) generativeModel(ctx context.Context) (*genai.GenerativeModel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.model != nil {
		return l.model, nil
	}
	if l.projectID == "" {
		return nil, goerr.New("GCP_PROJECT_ID is not set")
	}

	var opts []option.ClientOption
	if l.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(l.credentialsFile))
	}

	client, err := genai.NewClient(ctx, l.projectID, l.location, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Vertex AI client",
			goerr.V("project", l.projectID),
			goerr.V("location", l.location))
	}

	model := client.GenerativeModel(l.modelName)
	model.SetTemperature(l.temperature)
	model.SetTopP(0.8)
	model.SetTopK(40)

	l.client = client
	l.model = model
	return model, nil
}

// GenerateResponse generates a response using the Vertex AI model
func (l *VertexLLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	model, err := l.generativeModel(ctx)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate response", goerr.V("model", l.modelName))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", goerr.New("no response generated", goerr.V("model", l.modelName))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", goerr.New("unexpected response type", goerr.V("model", l.modelName))
	}
	return sb.String(), nil
}

// Close closes the Vertex AI client
func (l *VertexLLM) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client == nil {
		return nil
	}
	return l.client.Close()
}
