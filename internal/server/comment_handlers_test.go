package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiegram/internal/models"
)

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

func addComment(t *testing.T, s *Server, token string, postID uint, text string) commentsResponse {
	t.Helper()
	resp := doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/posts/%d/comment", postID), token, map[string]string{
		"text": text,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body commentsResponse
	decodeBody(t, resp, &body)
	return body
}

func TestAddComment_PrependsNewest(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "alice", "secret123")
	post := createPost(t, s, token, "https://example.com/1.jpg", "")
	id := postID(t, post)

	addComment(t, s, token, id, "first!")
	body := addComment(t, s, token, id, "second!")

	require.Len(t, body.Comments, 2)
	assert.Equal(t, "second!", body.Comments[0].Text)
	assert.Equal(t, "first!", body.Comments[1].Text)
	assert.Equal(t, "alice", body.Comments[0].AuthorUsername)
}

func TestAddComment_RejectsEmptyText(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "alice", "secret123")
	post := createPost(t, s, token, "https://example.com/1.jpg", "")

	resp := doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/posts/%d/comment", postID(t, post)), token, map[string]string{
		"text": "   ",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, models.CodeValidation, body.Code)
}

func TestAddComment_MissingPost(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "alice", "secret123")

	resp := doJSON(t, s, http.MethodPost, "/api/posts/9999/comment", token, map[string]string{
		"text": "hello?",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteComment_AuthorAndPostOwner(t *testing.T) {
	s := newTestServer(t)
	owner := registerUser(t, s, "owner", "secret123")
	commenter := registerUser(t, s, "commenter", "secret123")
	stranger := registerUser(t, s, "stranger", "secret123")

	post := createPost(t, s, owner, "https://example.com/1.jpg", "")
	id := postID(t, post)

	body := addComment(t, s, commenter, id, "by commenter")
	byCommenter := body.Comments[0].ID
	body = addComment(t, s, commenter, id, "another one")
	another := body.Comments[0].ID

	deleteURL := func(commentID uint) string {
		return fmt.Sprintf("/api/posts/%d/comment/%d", id, commentID)
	}

	// A third party can delete nothing.
	resp := doJSON(t, s, http.MethodDelete, deleteURL(byCommenter), stranger, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errBody models.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, models.CodeUnauthorized, errBody.Code)

	// The comment's author can delete their own comment.
	resp = doJSON(t, s, http.MethodDelete, deleteURL(byCommenter), commenter, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var remaining commentsResponse
	decodeBody(t, resp, &remaining)
	require.Len(t, remaining.Comments, 1)

	// The post's owner can moderate any comment on their post.
	resp = doJSON(t, s, http.MethodDelete, deleteURL(another), owner, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &remaining)
	assert.Empty(t, remaining.Comments)
}

func TestDeleteComment_WrongPostIsNotFound(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "alice", "secret123")

	postA := postID(t, createPost(t, s, token, "https://example.com/a.jpg", ""))
	postB := postID(t, createPost(t, s, token, "https://example.com/b.jpg", ""))

	body := addComment(t, s, token, postA, "on post A")
	commentID := body.Comments[0].ID

	resp := doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/posts/%d/comment/%d", postB, commentID), token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
