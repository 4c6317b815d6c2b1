// Package providers contains the LLM provider adapters and the router that
// selects between them.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/thevoices/pkg/providers/openai] — OpenAI Chat Completions API
//   - [github.com/germanamz/thevoices/pkg/providers/anthropic] — Anthropic Messages API
//   - [github.com/germanamz/thevoices/pkg/providers/gemini] — Google Gemini generateContent API
//   - [github.com/germanamz/thevoices/pkg/providers/grok] — xAI Grok (OpenAI-compatible) API
//   - [github.com/germanamz/thevoices/pkg/providers/router] — "provider/model" identifier dispatch
//
// Each adapter embeds modeladapter.ModelAdapter for HTTP and auth plumbing
// and implements modeladapter.Completer.
package providers
