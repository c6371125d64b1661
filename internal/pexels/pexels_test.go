package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.baseURL = server.URL
	client.httpClient = server.Client()

	return client
}

func TestSearch_Success(t *testing.T) {
	var gotAuth, gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")

		w.Write([]byte(`{"photos":[
			{"alt":"a mountain","photographer":"Ana","src":{"large":"https://img/large1","small":"https://img/small1"}},
			{"alt":"","photographer":"Bo","src":{"large":"https://img/large2","small":"https://img/small2"}},
			{"alt":"","photographer":"","src":{"large":"https://img/large3","small":"https://img/small3"}}
		]}`)) //nolint:errcheck
	})

	images, err := client.Search(context.Background(), "mountain sunset")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "mountain sunset", gotQuery)

	require.Len(t, images, 3)
	assert.Equal(t, Image{URL: "https://img/large1", Alt: "a mountain", Thumbnail: "https://img/small1"}, images[0])
	assert.Equal(t, "Bo", images[1].Alt, "photographer is the alt fallback")
	assert.Equal(t, "mountain sunset", images[2].Alt, "query is the last-resort alt")
}

func TestSearch_EmptyQuery(t *testing.T) {
	client := NewClient("test-key")

	_, err := client.Search(context.Background(), "")

	assert.Error(t, err)
}

func TestSearch_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "cats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
