package integration

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoapp/api/internal/auth"
)

func TestSignupAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tokens := app.signup(t)
	assert.NotEmpty(t, tokens.User.ID)

	// Same email twice is rejected.
	resp := app.doJSON(t, http.MethodPost, "/api/user", "", map[string]string{
		"email":    tokens.User.Email,
		"password": "secret123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Login with the right password works.
	resp = app.doJSON(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    tokens.User.Email,
		"password": "secret123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	assert.NotEmpty(t, login.AccessToken)

	// Wrong password and unknown email produce the same reply.
	for _, creds := range []map[string]string{
		{"email": tokens.User.Email, "password": "wrong-password"},
		{"email": "nobody@example.com", "password": "secret123"},
	} {
		resp := app.doJSON(t, http.MethodPost, "/api/login", "", creds)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestSignupValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	for name, body := range map[string]map[string]string{
		"bad email":      {"email": "not-an-email", "password": "secret123"},
		"short password": {"email": "someone@example.com", "password": "abc"},
	} {
		resp := app.doJSON(t, http.MethodPost, "/api/user", "", body)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestSilentRefresh(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tokens := app.signup(t)

	// Mint an already-expired access token for the same user.
	expired := auth.NewManager(auth.Config{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		AccessTTL:     -time.Minute,
	})
	expiredAccess, err := expired.GenerateAccessToken(tokens.User.ID)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, app.Server.URL+"/api/todo", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+expiredAccess)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: tokens.RefreshToken})

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rotated string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "accessToken" {
			rotated = cookie.Value
		}
	}
	require.NotEmpty(t, rotated, "a rotated access token cookie should be set")
	assert.NotEqual(t, expiredAccess, rotated)

	// The rotated token works on its own.
	resp2 := app.doJSON(t, http.MethodGet, "/api/todo", rotated, nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestRefreshAfterLogout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tokens := app.signup(t)

	resp := app.doJSON(t, http.MethodPost, "/api/logout", tokens.AccessToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	expired := auth.NewManager(auth.Config{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		AccessTTL:     -time.Minute,
	})
	expiredAccess, err := expired.GenerateAccessToken(tokens.User.ID)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, app.Server.URL+"/api/todo", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+expiredAccess)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: tokens.RefreshToken})

	resp2, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}
