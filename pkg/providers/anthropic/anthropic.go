// Package anthropic provides a Completer implementation for the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/modeladapter"
)

const messagesPath = "/v1/messages"

// DefaultBaseURL is the base URL for the Anthropic API.
const DefaultBaseURL = "https://api.anthropic.com"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Anthropic Messages API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the Anthropic API.
// The baseURL should be "https://api.anthropic.com" (no trailing slash).
func New(baseURL, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{
		Key:    apiKey,
		Header: "x-api-key",
	}
	a.Name = model
	a.MaxTokens = 4096
	a.Headers = map[string]string{
		"anthropic-version": "2023-06-01",
	}

	return a
}

// Complete sends a conversation to the Anthropic Messages API and returns the
// assistant's reply.
func (a *Adapter) Complete(ctx context.Context, c *chats.Chat) (chats.Message, error) {
	req := apiRequest{
		Model:     a.Name,
		MaxTokens: a.MaxTokens,
		System:    c.SystemPrompt(),
	}

	if a.Temperature != 0 {
		t := a.Temperature
		req.Temperature = &t
	}

	for _, m := range c.Messages() {
		if m.Role == chats.System {
			continue
		}
		req.Messages = append(req.Messages, apiMessage{
			Role:    mapRole(m.Role),
			Content: m.Text,
		})
	}

	var resp apiResponse
	if err := a.PostJSON(ctx, messagesPath, req, &resp); err != nil {
		return chats.Message{}, fmt.Errorf("anthropic: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	return chats.NewMessage(chats.Assistant, b.String()), nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	MaxTokens   int          `json:"max_tokens"`
	System      string       `json:"system,omitempty"`
	Messages    []apiMessage `json:"messages"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Content    []apiContent `json:"content"`
	StopReason string       `json:"stop_reason"`
}

type apiContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

func mapRole(r chats.Role) string {
	if r == chats.Assistant {
		return "assistant"
	}
	return "user"
}
