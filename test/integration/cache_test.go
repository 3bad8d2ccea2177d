package integration

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedReadIsByteIdentical(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tokens := app.signup(t)

	resp := app.doJSON(t, http.MethodPost, "/api/todo", tokens.AccessToken, map[string]any{
		"content": "cached task",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[todoResponse](t, resp)
	resp.Body.Close()

	first := app.doJSON(t, http.MethodGet, "/api/todo/"+created.ID, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, first.StatusCode)
	firstBody, err := io.ReadAll(first.Body)
	require.NoError(t, err)
	first.Body.Close()

	// The response is now stored under the request URL.
	cached, hit, err := app.Cache.Get(context.Background(), "/api/todo/"+created.ID)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, firstBody, cached)

	second := app.doJSON(t, http.MethodGet, "/api/todo/"+created.ID, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, second.StatusCode)
	secondBody, err := io.ReadAll(second.Body)
	require.NoError(t, err)
	second.Body.Close()

	assert.Equal(t, firstBody, secondBody)
}

func TestCacheServesStaleAfterUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tokens := app.signup(t)

	resp := app.doJSON(t, http.MethodPost, "/api/todo", tokens.AccessToken, map[string]any{
		"content": "original",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[todoResponse](t, resp)
	resp.Body.Close()

	first := app.doJSON(t, http.MethodGet, "/api/todo/"+created.ID, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, first.StatusCode)
	first.Body.Close()

	resp = app.doJSON(t, http.MethodPut, "/api/todo/"+created.ID, tokens.AccessToken, map[string]any{
		"content": "changed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Writes do not invalidate; the read stays stale until the TTL lapses.
	second := app.doJSON(t, http.MethodGet, "/api/todo/"+created.ID, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, second.StatusCode)
	stale := decodeBody[todoResponse](t, second)
	second.Body.Close()
	assert.Equal(t, "original", stale.Content)
}
