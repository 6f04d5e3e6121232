package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewOpenAIClient("test-key")
	c.endpoint = srv.URL
	return c
}

func TestCompleteReturnsTrimmedMessage(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  {\"total_cost\": 10}  \n"}},
			},
		})
	})

	text, err := c.Complete(context.Background(), "plan a trip")
	require.NoError(t, err)

	assert.Equal(t, `{"total_cost": 10}`, text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "plan a trip", gotReq.Messages[0].Content)
}

func TestCompletePropagatesAPIErrorMessage(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limit exceeded"},
		})
	})

	_, err := c.Complete(context.Background(), "plan a trip")
	require.Error(t, err)
	assert.EqualError(t, err, "rate limit exceeded")
}

func TestCompleteFallsBackToStatusOnOpaqueError(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Complete(context.Background(), "plan a trip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCompleteRejectsEmptyReplies(t *testing.T) {
	t.Run("no choices", func(t *testing.T) {
		c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})

		_, err := c.Complete(context.Background(), "plan a trip")
		assert.Error(t, err)
	})

	t.Run("blank message", func(t *testing.T) {
		c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "   "}},
				},
			})
		})

		_, err := c.Complete(context.Background(), "plan a trip")
		assert.Error(t, err)
	})
}

func TestCompleteHonorsContextCancellation(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Complete(ctx, "plan a trip")
	assert.Error(t, err)
}
