package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"foodiegram/internal/cache"
	"foodiegram/internal/config"
	"foodiegram/internal/database"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           "0",
		JWTSecret:      "test-secret-0123456789abcdef-0123456789",
		TokenTTL:       time.Hour,
		Env:            "test",
		AllowedOrigins: "*",
	}
	return NewServerWithDeps(cfg, db, cache.NewWithClient(nil))
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, s *Server, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// registerUser registers a user and returns the session token.
func registerUser(t *testing.T, s *Server, username, password string) string {
	t.Helper()
	resp := doJSON(t, s, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// createPost creates a post and returns its decoded body.
func createPost(t *testing.T, s *Server, token, imageURL, caption string) map[string]any {
	t.Helper()
	resp := doJSON(t, s, http.MethodPost, "/api/posts/", token, map[string]string{
		"image_url": imageURL,
		"caption":   caption,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post map[string]any
	decodeBody(t, resp, &post)
	return post
}

func postID(t *testing.T, post map[string]any) uint {
	t.Helper()
	id, ok := post["id"].(float64)
	require.True(t, ok, "post has no numeric id: %v", post)
	return uint(id)
}
