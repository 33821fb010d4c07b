package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent_Success(t *testing.T) {
	var gotPath string
	var gotKey string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		err := json.NewDecoder(r.Body).Decode(&gotBody)
		require.NoError(t, err)

		resp := map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]string{{"text": "a concise overview"}},
						"role":  "model",
					},
					"finishReason": "STOP",
				},
			},
		}

		json.NewEncoder(w).Encode(resp) //nolint:errcheck,gosec // test server
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	text, err := client.GenerateContent(context.Background(), "", "describe this data")

	require.NoError(t, err)
	assert.Equal(t, "a concise overview", text)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "describe this data", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateContent_UnsupportedModel(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"})

	_, err := client.GenerateContent(context.Background(), "gemini-ultra-9000", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model")
}

func TestGenerateContent_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), ModelPro, "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`)) //nolint:errcheck,gosec // test server
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), ModelFlash, "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestIsSupportedModel(t *testing.T) {
	assert.True(t, IsSupportedModel(ModelFlash))
	assert.True(t, IsSupportedModel(ModelFlash8B))
	assert.True(t, IsSupportedModel(ModelPro))
	assert.False(t, IsSupportedModel(""))
	assert.False(t, IsSupportedModel("claude-3-haiku"))
}
