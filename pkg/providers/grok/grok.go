// Package grok implements the modeladapter.Completer interface for xAI's Grok
// models using the OpenAI-compatible chat completions API.
package grok

import (
	"context"
	"fmt"
	"net/http"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/modeladapter"
)

// DefaultBaseURL is the base URL for the xAI API.
const DefaultBaseURL = "https://api.x.ai/v1"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter sends chat completions to xAI's Grok API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter with the given API key and HTTP client.
// A nil client falls back to a default client.
func New(apiKey string, client *http.Client) *Adapter {
	return &Adapter{
		ModelAdapter: modeladapter.New(DefaultBaseURL, modeladapter.Auth{Key: apiKey}, client),
	}
}

// Complete sends a conversation to the Grok chat completions endpoint
// and returns the assistant's reply.
func (a *Adapter) Complete(ctx context.Context, c *chats.Chat) (chats.Message, error) {
	req := chatRequest{
		Model:     a.Name,
		Messages:  convertMessages(c),
		MaxTokens: a.MaxTokens,
	}

	if a.Temperature != 0 {
		t := a.Temperature
		req.Temperature = &t
	}

	var resp chatResponse
	if err := a.PostJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return chats.Message{}, fmt.Errorf("grok: %w", err)
	}

	if len(resp.Choices) == 0 {
		return chats.Message{}, fmt.Errorf("grok: empty choices in response")
	}

	return chats.NewMessage(chats.Assistant, resp.Choices[0].Message.Content), nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func convertMessages(c *chats.Chat) []chatMessage {
	msgs := c.Messages()
	out := make([]chatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chatMessage{Role: m.Role.String(), Content: m.Text})
	}
	return out
}
