package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	cachestore "github.com/todoapp/api/internal/adapters/cache/redis"
	handler "github.com/todoapp/api/internal/adapters/handler/http"
	mongorepo "github.com/todoapp/api/internal/adapters/repository/mongo"
	"github.com/todoapp/api/internal/auth"
	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
	"github.com/todoapp/api/internal/core/services"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

type TestApp struct {
	Server *httptest.Server
	Client *http.Client
	Cache  ports.CacheStore

	mongoContainer testcontainers.Container
	redisContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := tcmongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	mongoURL, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	redisContainer, err := tcredis.Run(ctx, "redis:7")
	require.NoError(t, err)

	redisURL, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	mongoClient, err := mongorepo.Connect(ctx, mongoURL)
	require.NoError(t, err)

	db := mongoClient.Database("todoapp_test")
	require.NoError(t, mongorepo.EnsureIndexes(ctx, db))

	redisClient, err := cachestore.NewClient(ctx, redisURL)
	require.NoError(t, err)

	cache := cachestore.NewStore(redisClient)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := auth.NewManager(auth.Config{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	})

	userRepo := mongorepo.NewUserRepository(db)
	todoRepo := mongorepo.NewTodoRepository(db)
	postRepo := mongorepo.NewPostRepository(db)
	commentRepo := mongorepo.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo, cache, tokens, 7*24*time.Hour)
	userService := services.NewUserService(userRepo)
	todoService := services.NewTodoService(todoRepo, domain.OwnerScopeOwned)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	router := handler.NewHandler(
		authService,
		cache,
		300*time.Second,
		handler.NewUserHandler(authService, userService, logger),
		handler.NewTodoHandler(todoService, logger),
		handler.NewPostHandler(postService, logger),
		handler.NewCommentHandler(commentService, logger),
		logger,
	)

	server := httptest.NewServer(router)

	return &TestApp{
		Server:         server,
		Client:         server.Client(),
		Cache:          cache,
		mongoContainer: mongoContainer,
		redisContainer: redisContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	ctx := context.Background()
	if err := app.mongoContainer.Terminate(ctx); err != nil {
		t.Logf("failed to terminate mongo container: %v", err)
	}
	if err := app.redisContainer.Terminate(ctx); err != nil {
		t.Logf("failed to terminate redis container: %v", err)
	}
}

type authTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// signup registers a fresh user with a unique email and returns its tokens.
func (app *TestApp) signup(t *testing.T) authTokens {
	t.Helper()
	email := fmt.Sprintf("user-%s@example.com", uuid.New())

	resp := app.doJSON(t, http.MethodPost, "/api/user", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tokens authTokens
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokens))
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	return tokens
}

// doJSON issues a request with an optional bearer token and JSON body.
func (app *TestApp) doJSON(t *testing.T, method, path, accessToken string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
