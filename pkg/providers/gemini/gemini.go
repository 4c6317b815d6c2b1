// Package gemini provides a Completer implementation for the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/modeladapter"
)

// DefaultBaseURL is the base URL for the Gemini API.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Google Gemini API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the Gemini API.
// The baseURL should be "https://generativelanguage.googleapis.com" (no trailing slash).
func New(baseURL, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{
		Key:    apiKey,
		Header: "x-goog-api-key",
	}
	a.Name = model
	a.MaxTokens = 8192

	return a
}

// Complete sends a conversation to the Gemini API and returns the assistant's reply.
func (a *Adapter) Complete(ctx context.Context, c *chats.Chat) (chats.Message, error) {
	req := a.buildRequest(c)
	path := fmt.Sprintf("/v1beta/models/%s:generateContent", a.Name)

	var resp apiResponse
	if err := a.PostJSON(ctx, path, req, &resp); err != nil {
		return chats.Message{}, fmt.Errorf("gemini: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return chats.Message{}, fmt.Errorf("gemini: empty candidates in response")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}

	return chats.NewMessage(chats.Assistant, b.String()), nil
}

// --- request types ---

type apiRequest struct {
	Contents          []apiContent     `json:"contents"`
	SystemInstruction *apiContent      `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
}

// --- response types ---

type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
}

type apiCandidate struct {
	Content      apiContent `json:"content"`
	FinishReason string     `json:"finishReason"`
}

func (a *Adapter) buildRequest(c *chats.Chat) apiRequest {
	req := apiRequest{
		GenerationConfig: generationConfig{MaxOutputTokens: a.MaxTokens},
	}

	if a.Temperature != 0 {
		t := a.Temperature
		req.GenerationConfig.Temperature = &t
	}

	if sys := c.SystemPrompt(); sys != "" {
		req.SystemInstruction = &apiContent{Parts: []apiPart{{Text: sys}}}
	}

	for _, m := range c.Messages() {
		if m.Role == chats.System {
			continue
		}
		req.Contents = append(req.Contents, apiContent{
			Role:  mapRole(m.Role),
			Parts: []apiPart{{Text: m.Text}},
		})
	}

	return req
}

// mapRole converts a chat role to Gemini's content role. Gemini uses "model"
// for assistant turns.
func mapRole(r chats.Role) string {
	if r == chats.Assistant {
		return "model"
	}
	return "user"
}
