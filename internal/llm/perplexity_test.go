package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*PerplexityClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewPerplexityClient(PerplexityConfig{APIKey: "test-key"})
	client.baseURL = server.URL
	client.httpClient = server.Client()

	return client, server
}

func completionBody(content string) string {
	resp := map[string]any{
		"id":    "cmpl-1",
		"model": "sonar",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	}

	data, _ := json.Marshal(resp)

	return string(data)
}

func TestGenerateText_Success(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		err := json.NewDecoder(r.Body).Decode(&gotReq)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("### HTML CODE ###\n<h1>hi</h1>"))) //nolint:errcheck
	})

	text, err := client.GenerateText(context.Background(), "system prompt", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, "### HTML CODE ###\n<h1>hi</h1>", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "sonar", gotReq.Model)
	assert.Equal(t, defaultMaxTokens, gotReq.MaxTokens)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "user prompt", gotReq.Messages[1].Content)
}

func TestGenerateText_NonOKStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream unavailable"}`)) //nolint:errcheck
	})

	_, err := client.GenerateText(context.Background(), "s", "u")

	require.Error(t, err)
	assert.True(t, IsUpstreamKind(err, KindStatus))

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadGateway, ue.Status)
	assert.Contains(t, ue.Detail, "upstream unavailable")
}

func TestGenerateText_EmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":"cmpl-1","model":"sonar","choices":[]}`)) //nolint:errcheck
	})

	_, err := client.GenerateText(context.Background(), "s", "u")

	require.Error(t, err)
	assert.True(t, IsUpstreamKind(err, KindEnvelope))
}

func TestGenerateText_MissingContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(completionBody("   "))) //nolint:errcheck
	})

	_, err := client.GenerateText(context.Background(), "s", "u")

	require.Error(t, err)
	assert.True(t, IsUpstreamKind(err, KindEnvelope))
}

func TestGenerateText_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json")) //nolint:errcheck
	})

	_, err := client.GenerateText(context.Background(), "s", "u")

	require.Error(t, err)
	assert.True(t, IsUpstreamKind(err, KindEnvelope))
}

func TestGenerateText_Timeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GenerateText(ctx, "s", "u")

	require.Error(t, err)
	assert.True(t, IsUpstreamKind(err, KindTimeout))
}

func TestGenerateText_TransportFailure(t *testing.T) {
	client, server := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})
	server.Close()

	_, err := client.GenerateText(context.Background(), "s", "u")

	require.Error(t, err)
	assert.True(t, IsUpstreamKind(err, KindTransport))
}

func TestNewPerplexityClient_Defaults(t *testing.T) {
	client := NewPerplexityClient(PerplexityConfig{APIKey: "k"})

	assert.Equal(t, "sonar", client.Model())
	assert.Equal(t, defaultMaxTokens, client.config.MaxTokens)

	custom := NewPerplexityClient(PerplexityConfig{APIKey: "k", Model: "sonar-pro", MaxTokens: 500})
	assert.Equal(t, "sonar-pro", custom.Model())
	assert.Equal(t, 500, custom.config.MaxTokens)
}
