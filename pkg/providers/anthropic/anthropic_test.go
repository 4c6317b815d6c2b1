package anthropic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/providers/anthropic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *anthropic.Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return anthropic.New(srv.URL, "test-key", "claude-test")
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
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		req := readBody(t, r)
		assert.Equal(t, "claude-test", req["model"])
		assert.Equal(t, "You are helpful.", req["system"])

		msgs, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, msgs, 1)

		first := msgs[0].(map[string]any)
		assert.Equal(t, "user", first["role"])
		assert.Equal(t, "Hi", first["content"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hello there!"}],"stop_reason":"end_turn"}`))
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

func TestComplete_JoinsTextBlocks(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]}`))
	})

	msg, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.NoError(t, err)
	assert.Equal(t, "Hello world", msg.Text)
}

func TestComplete_Temperature(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		req := readBody(t, r)
		assert.InDelta(t, 0.2, req["temperature"], 1e-9)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	})
	adapter.SetTemperature(0.2)

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.NoError(t, err)
}

func TestComplete_APIError(t *testing.T) {
	adapter := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"unknown model"}}`))
	})

	_, err := adapter.Complete(context.Background(), chats.New(chats.NewMessage(chats.User, "hi")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic:")
	assert.Contains(t, err.Error(), "unknown model")
}
