package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arcana/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProvider_Generate(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  An insightful reading.  "}},
			},
		})
	}))
	defer srv.Close()

	provider := ai.NewOpenAIProvider(ai.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1/"})
	text, err := provider.Generate(context.Background(), "hello cards")
	require.NoError(t, err)
	assert.Equal(t, "An insightful reading.", text)

	assert.Equal(t, "gpt-4o-mini", got["model"])
	messages := got["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
	assert.Equal(t, "hello cards", messages[0].(map[string]any)["content"])
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	provider := ai.NewOpenAIProvider(ai.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := provider.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenAIProvider_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	provider := ai.NewOpenAIProvider(ai.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := provider.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}

func TestProviders_NotConfigured(t *testing.T) {
	openai := ai.NewOpenAIProvider(ai.OpenAIConfig{})
	assert.False(t, openai.Configured())
	_, err := openai.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ai.ErrProviderNotConfigured)

	gemini, err := ai.NewGeminiProvider(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, gemini.Configured())
	assert.Equal(t, ai.ProviderGemini, gemini.Name())
	_, err = gemini.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ai.ErrProviderNotConfigured)
}
