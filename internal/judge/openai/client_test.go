package openai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liang-qiu/clausecheck/internal/common"
	"github.com/liang-qiu/clausecheck/internal/judge"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
	}, nil)
}

func TestCompleteReturnsMessageContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  合规。双方约定一致。  "}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.Complete(context.Background(), judge.Request{Prompt: "compare clauses"})
	require.NoError(t, err)
	assert.Equal(t, "合规。双方约定一致。", out)
}

func TestCompleteServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), judge.Request{Prompt: "compare clauses"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnavailable))
	assert.Contains(t, err.Error(), "503")
}

func TestCompleteTransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), judge.Request{Prompt: "compare clauses"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnavailable))
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), judge.Request{Prompt: "compare clauses"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrUnavailable))
}
