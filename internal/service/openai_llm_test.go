package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mousam-kumari/gift-flask/internal/service"
)

func newOpenAIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAILLMGenerateResponse(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/v1/chat/completions")
		gt.Equal(t, r.Header.Get("Authorization"), "Bearer test-key")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Product_name: Kindle\nReason: Light"}, "finish_reason": "stop"}]
		}`))
	})

	llm := service.NewOpenAILLM("test-key", "gpt-4o-mini", srv.URL+"/v1", 0.7)
	text, err := llm.GenerateResponse(context.Background(), "hello")
	gt.NoError(t, err)
	gt.Equal(t, text, "Product_name: Kindle\nReason: Light")

	gt.Equal(t, got.Model, "gpt-4o-mini")
	gt.A(t, got.Messages).Length(1)
	gt.Equal(t, got.Messages[0].Role, "user")
	gt.Equal(t, got.Messages[0].Content, "hello")
}

func TestOpenAILLMUpstreamError(t *testing.T) {
	srv := newOpenAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	})

	llm := service.NewOpenAILLM("bad-key", "gpt-4o-mini", srv.URL+"/v1", 0.7)
	_, err := llm.GenerateResponse(context.Background(), "hello")
	gt.Error(t, err)
}

func TestOpenAILLMNoChoices(t *testing.T) {
	srv := newOpenAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	})

	llm := service.NewOpenAILLM("test-key", "gpt-4o-mini", srv.URL+"/v1", 0.7)
	_, err := llm.GenerateResponse(context.Background(), "hello")
	gt.Error(t, err)
}

func TestOpenAILLMMissingKey(t *testing.T) {
	llm := service.NewOpenAILLM("", "gpt-4o-mini", "", 0.7)
	_, err := llm.GenerateResponse(context.Background(), "hello")
	gt.Error(t, err)
}
