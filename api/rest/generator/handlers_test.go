package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gen "codeberg.org/webforge/server/internal/generator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements WebsiteGenerator for testing
type mockGenerator struct {
	generateFunc func(ctx context.Context, userID, description string) (*gen.Result, error)
	calls        int
}

func (m *mockGenerator) Generate(ctx context.Context, userID, description string) (*gen.Result, error) {
	m.calls++

	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, description)
	}

	return &gen.Result{HTMLCode: "<h1>x</h1>", CSSCode: "h1{}", JSCode: ""}, nil
}

func performRequest(handler gin.HandlerFunc, userID, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/generator/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	if userID != "" {
		c.Set("user_id", userID)
	}

	handler(c)

	return w
}

func TestGenerateHandler_Success(t *testing.T) {
	mock := &mockGenerator{
		generateFunc: func(_ context.Context, userID, description string) (*gen.Result, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "a dark portfolio site", description)

			return &gen.Result{
				HTMLCode: "<main>portfolio</main>",
				CSSCode:  "body { background: #111; }",
				JSCode:   "console.log('ready');",
			}, nil
		},
	}

	w := performRequest(GenerateHandler(mock), "user-1", `{"prompt":"a dark portfolio site"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "<main>portfolio</main>", resp.HTMLCode)
	assert.Equal(t, "body { background: #111; }", resp.CSSCode)
	assert.Equal(t, "console.log('ready');", resp.JSCode)
}

func TestGenerateHandler_QuotaExceeded(t *testing.T) {
	mock := &mockGenerator{
		generateFunc: func(_ context.Context, _, _ string) (*gen.Result, error) {
			return nil, gen.ErrQuotaExceeded
		},
	}

	w := performRequest(GenerateHandler(mock), "user-1", `{"prompt":"anything"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, quotaExceededMessage, resp["message"])
	assert.Equal(t, "too_many_requests", resp["error"])
}

func TestGenerateHandler_UpstreamFailure(t *testing.T) {
	mock := &mockGenerator{
		generateFunc: func(_ context.Context, _, _ string) (*gen.Result, error) {
			return nil, assert.AnError
		},
	}

	w := performRequest(GenerateHandler(mock), "user-1", `{"prompt":"anything"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "generation_failed", resp["error"])
	assert.Equal(t, "Failed to generate website", resp["message"])
}

func TestGenerateHandler_MissingPrompt(t *testing.T) {
	mock := &mockGenerator{}

	w := performRequest(GenerateHandler(mock), "user-1", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mock.calls)
}

func TestGenerateHandler_Unauthenticated(t *testing.T) {
	mock := &mockGenerator{}

	w := performRequest(GenerateHandler(mock), "", `{"prompt":"anything"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, mock.calls)
}

func TestExamplesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/generator/examples", nil)

	ExamplesHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ExamplesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ExamplePrompts)
}
