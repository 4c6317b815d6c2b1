// Package openai provides a Completer implementation for the OpenAI Chat Completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/modeladapter"
)

const completionsPath = "/v1/chat/completions"

// DefaultBaseURL is the base URL for the OpenAI API.
const DefaultBaseURL = "https://api.openai.com"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the OpenAI Chat Completions API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the OpenAI API.
// The baseURL should be "https://api.openai.com" (no trailing slash).
func New(baseURL, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{Key: apiKey}
	a.Name = model
	a.MaxTokens = 4096

	return a
}

// Complete sends a conversation to the OpenAI Chat Completions API and returns
// the assistant's reply.
func (a *Adapter) Complete(ctx context.Context, c *chats.Chat) (chats.Message, error) {
	req := apiRequest{
		Model:     a.Name,
		Messages:  convertMessages(c),
		MaxTokens: a.MaxTokens,
	}

	if a.Temperature != 0 {
		t := a.Temperature
		req.Temperature = &t
	}

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return chats.Message{}, fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return chats.Message{}, fmt.Errorf("openai: empty choices in response")
	}

	return chats.NewMessage(chats.Assistant, resp.Choices[0].Message.Content), nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message      apiRespMessage `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type apiRespMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func convertMessages(c *chats.Chat) []apiMessage {
	msgs := c.Messages()
	out := make([]apiMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, apiMessage{Role: m.Role.String(), Content: m.Text})
	}
	return out
}
