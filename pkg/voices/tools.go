package voices

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/thevoices/pkg/tools/toolbox"
)

const listModelsSchema = `{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`

const askTheVoiceSchema = `{
  "type": "object",
  "properties": {
    "role_title": {
      "type": "string",
      "description": "Title of the persona, e.g. \"The Security Architect\"."
    },
    "role_description": {
      "type": "string",
      "description": "Expertise, background, and communication style of the persona."
    },
    "context": {
      "type": "string",
      "description": "Background information for the task: situation, constraints, relevant data."
    },
    "task": {
      "type": "string",
      "description": "The specific request the persona should address."
    },
    "model": {
      "type": "string",
      "description": "Model identifier as \"provider/model\". Defaults to the configured default model. Use list_available_models to see what is configured."
    },
    "temperature": {
      "type": "number",
      "description": "Sampling temperature. Defaults to 0.7."
    }
  },
  "required": ["role_title", "role_description", "context", "task"],
  "additionalProperties": false
}`

// Tools returns the MCP tool definitions backed by the service: one for
// listing configured models and one for asking a voice.
func (s *Service) Tools() []toolbox.Tool {
	return []toolbox.Tool{
		{
			Name: "list_available_models",
			Description: "Returns the list of available LLM models, as provider/model identifiers, " +
				"based on which provider API keys are present in the environment. " +
				"Purely local: presence of a credential is taken as availability, nothing is pinged.",
			InputSchema: json.RawMessage(listModelsSchema),
			Handler:     s.handleListModels,
		},
		{
			Name: "ask_the_voice",
			Description: "Consults a role-based AI persona. Builds a system prompt from role_title and " +
				"role_description and a user prompt from context and task, then performs a single " +
				"completion call and returns the generated text.",
			InputSchema: json.RawMessage(askTheVoiceSchema),
			Handler:     s.handleAsk,
		},
	}
}

func (s *Service) handleListModels(_ context.Context, _ json.RawMessage) (string, error) {
	models := s.AvailableModels()
	if models == nil {
		models = []string{}
	}

	out, err := json.Marshal(models)
	if err != nil {
		return "", fmt.Errorf("voices: encode model list: %w", err)
	}

	return string(out), nil
}

func (s *Service) handleAsk(ctx context.Context, input json.RawMessage) (string, error) {
	var req Request
	if err := json.Unmarshal(input, &req); err != nil {
		return "", fmt.Errorf("voices: parse arguments: %w", err)
	}

	return s.Ask(ctx, req)
}
