package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/providers/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *openai.Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return openai.New(srv.URL, "test-key", "gpt-test")
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var req map[string]any
	require.NoError(t, json.Unmarshal(body, &req))

	return req
}

func TestComplete_SimpleText(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		req := readBody(t, r)
		assert.Equal(t, "gpt-test", req["model"])

		msgs, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, msgs, 2)

		first := msgs[0].(map[string]any)
		assert.Equal(t, "system", first["role"])
		assert.Equal(t, "You are helpful.", first["content"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there!"}}]}`))
	})

	c := chats.New(
		chats.NewMessage(chats.System, "You are helpful."),
		chats.NewMessage(chats.User, "Hi"),
	)

	msg, err := adapter.Complete(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, chats.Assistant, msg.Role)
	assert.Equal(t, "Hello there!", msg.Text)
}

func TestComplete_TemperatureSent(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		req := readBody(t, r)
		assert.InDelta(t, 0.7, req["temperature"], 1e-9)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})
	adapter.SetTemperature(0.7)

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.NoError(t, err)
}

func TestComplete_TemperatureOmittedWhenZero(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		req := readBody(t, r)
		_, present := req["temperature"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.NoError(t, err)
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
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai:")
	assert.Contains(t, err.Error(), "rate limited")
}
