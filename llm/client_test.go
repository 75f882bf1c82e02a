package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nfrframework/nfrassist/llm"
	_ "github.com/nfrframework/nfrassist/llm/providers" // Register providers
	"github.com/nfrframework/nfrassist/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classifyRegistry builds a registry routing the classify capability to a
// single endpoint backed by the given test server.
func classifyRegistry(serverURL string) *model.Registry {
	return model.NewRegistry(
		map[model.Capability]*model.CapabilityConfig{
			model.CapabilityClassify: {
				Description: "Requirement classification",
				Preferred:   []string{"local-llama"},
			},
		},
		map[string]*model.EndpointConfig{
			"local-llama": {
				Provider: "ollama",
				URL:      serverURL,
				Model:    "llama3.1:8b",
			},
		},
	)
}

// fastRetry keeps retry tests quick.
func fastRetry(maxAttempts int) llm.RetryConfig {
	return llm.RetryConfig{
		MaxAttempts:       maxAttempts,
		BackoffBase:       time.Millisecond,
		BackoffMultiplier: 1.0,
		MaxBackoff:        10 * time.Millisecond,
	}
}

func completionBody(modelName, content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": 1677652288,
		"model":   modelName,
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]string{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{
			"prompt_tokens":     42,
			"completion_tokens": 9,
			"total_tokens":      51,
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("llama3.1:8b", `{"classification": "NFR"}`))
	}))
	defer server.Close()

	client := llm.NewClient(classifyRegistry(server.URL))

	resp, err := client.Complete(context.Background(), llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "user", Content: "The system shall respond to queries within 2 seconds."},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"classification": "NFR"}`, resp.Content)
	assert.Equal(t, "llama3.1:8b", resp.Model)
	assert.Equal(t, 51, resp.TokensUsed)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.NotEmpty(t, resp.RequestID)
}

func TestClient_Complete_RetryOnTransientError(t *testing.T) {
	var attempts atomic.Int32

	// Fails twice, succeeds on the third attempt
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("model is loading"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("llama3.1:8b", `{"classification": "FR"}`))
	}))
	defer server.Close()

	client := llm.NewClient(classifyRegistry(server.URL), llm.WithRetryConfig(fastRetry(3)))

	resp, err := client.Complete(context.Background(), llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "user", Content: "The system shall let users export reports as PDF."},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"classification": "FR"}`, resp.Content)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_Complete_NoRetryOnFatalError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid API key"))
	}))
	defer server.Close()

	client := llm.NewClient(classifyRegistry(server.URL))

	_, err := client.Complete(context.Background(), llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "user", Content: "All stored data shall be encrypted."},
		},
	})

	require.Error(t, err)
	assert.True(t, llm.IsFatal(err))
	assert.Equal(t, int32(1), attempts.Load()) // one attempt, no retry
}

func TestClient_Complete_Fallback(t *testing.T) {
	var primaryAttempts, fallbackAttempts atomic.Int32

	primaryServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryAttempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("primary down"))
	}))
	defer primaryServer.Close()

	fallbackServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackAttempts.Add(1)
		json.NewEncoder(w).Encode(completionBody("llama3.2", "Security protects system assets from unauthorized access."))
	}))
	defer fallbackServer.Close()

	registry := model.NewRegistry(
		map[model.Capability]*model.CapabilityConfig{
			model.CapabilityExplain: {
				Preferred: []string{"primary"},
				Fallback:  []string{"fallback"},
			},
		},
		map[string]*model.EndpointConfig{
			"primary": {
				Provider: "ollama",
				URL:      primaryServer.URL,
				Model:    "llama3.1:8b",
			},
			"fallback": {
				Provider: "ollama",
				URL:      fallbackServer.URL,
				Model:    "llama3.2",
			},
		},
	)

	client := llm.NewClient(registry, llm.WithRetryConfig(fastRetry(2)))

	resp, err := client.Complete(context.Background(), llm.Request{
		Capability: "explain",
		Messages: []llm.Message{
			{Role: "user", Content: "What is Security?"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Content, "unauthorized access")
	assert.Equal(t, int32(2), primaryAttempts.Load())  // exhausted its retries
	assert.Equal(t, int32(1), fallbackAttempts.Load()) // succeeded first try
}

func TestClient_Complete_RateLimitRetry(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("rate limited"))
			return
		}
		json.NewEncoder(w).Encode(completionBody("llama3.1:8b", `{"classification": "NFR"}`))
	}))
	defer server.Close()

	client := llm.NewClient(classifyRegistry(server.URL), llm.WithRetryConfig(fastRetry(3)))

	resp, err := client.Complete(context.Background(), llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "user", Content: "The UI shall remain responsive during report generation."},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"classification": "NFR"}`, resp.Content)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_Complete_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := llm.NewClient(classifyRegistry(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "user", Content: "The system shall log all access attempts."},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context")
}

func TestClient_Complete_ValidationErrors(t *testing.T) {
	client := llm.NewClient(model.NewDefaultRegistry())

	tests := []struct {
		name    string
		req     llm.Request
		wantErr string
	}{
		{
			name:    "empty capability",
			req:     llm.Request{Messages: []llm.Message{{Role: "user", Content: "hi"}}},
			wantErr: "capability is required",
		},
		{
			name:    "no messages",
			req:     llm.Request{Capability: "classify"},
			wantErr: "at least one message is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Complete(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
