package providers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenAIProvider_Name(t *testing.T) {
	p := &OpenAIProvider{}
	assert.Equal(t, "openai", p.Name())
}

func TestOpenAIProvider_BuildURL(t *testing.T) {
	p := &OpenAIProvider{}

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{
			name:    "empty uses default",
			baseURL: "",
			want:    "https://api.openai.com/v1/chat/completions",
		},
		{
			name:    "custom base URL (OpenRouter)",
			baseURL: "https://openrouter.ai/api/v1",
			want:    "https://openrouter.ai/api/v1/chat/completions",
		},
		{
			name:    "trailing slash handled",
			baseURL: "https://api.openai.com/v1/",
			want:    "https://api.openai.com/v1/chat/completions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.BuildURL(tt.baseURL))
		})
	}
}

func TestOpenAIProvider_SetHeaders(t *testing.T) {
	p := &OpenAIProvider{}

	t.Run("sets authorization header", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-api-key")

		req, _ := http.NewRequest(http.MethodPost, "https://api.openai.com/v1/chat/completions", nil)
		p.SetHeaders(req)

		assert.Equal(t, "Bearer test-api-key", req.Header.Get("Authorization"))
	})

	t.Run("sets OpenRouter headers when env vars present", func(t *testing.T) {
		t.Setenv("OPENROUTER_SITE_URL", "https://nfrassist.example.com")
		t.Setenv("OPENROUTER_SITE_NAME", "NFR Assist")

		req, _ := http.NewRequest(http.MethodPost, "https://openrouter.ai/api/v1/chat/completions", nil)
		p.SetHeaders(req)

		assert.Equal(t, "https://nfrassist.example.com", req.Header.Get("HTTP-Referer"))
		assert.Equal(t, "NFR Assist", req.Header.Get("X-Title"))
	})

	t.Run("no headers when env vars not set", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("OPENROUTER_SITE_URL", "")
		t.Setenv("OPENROUTER_SITE_NAME", "")

		req, _ := http.NewRequest(http.MethodPost, "https://api.openai.com/v1/chat/completions", nil)
		p.SetHeaders(req)

		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Empty(t, req.Header.Get("HTTP-Referer"))
		assert.Empty(t, req.Header.Get("X-Title"))
	})
}
