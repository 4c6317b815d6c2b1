package grok_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/providers/grok"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *grok.Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := grok.New("test-key", nil)
	a.BaseURL = srv.URL
	a.Name = "grok-test"

	return a
}

func TestComplete_SimpleText(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "grok-test", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there!"}}]}`))
	})

	msg, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "Hi")))
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", msg.Text)
}

func TestComplete_EmptyChoices(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}

func TestComplete_APIError(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid key"}`))
	})

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grok:")
	assert.Contains(t, err.Error(), "invalid key")
}
