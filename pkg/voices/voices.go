// Package voices implements the two operations of the server: listing the
// models whose provider credentials are configured, and answering a task
// through a role-persona completion ("asking the voice").
package voices

import (
	"context"
	"fmt"

	"github.com/germanamz/thevoices/pkg/catalog"
	"github.com/germanamz/thevoices/pkg/chats"
	"github.com/germanamz/thevoices/pkg/config"
	"github.com/germanamz/thevoices/pkg/modeladapter"
)

// Dialer resolves a "provider/model" identifier to a Completer configured
// with the given sampling temperature. *router.Router satisfies it.
type Dialer interface {
	Dial(model string, temperature float64) (modeladapter.Completer, error)
}

// Request carries the arguments of a single ask_the_voice call. It is
// created from caller-supplied arguments and discarded when the call
// returns; role and task fields are passed through unvalidated.
type Request struct {
	RoleTitle       string   `json:"role_title"`
	RoleDescription string   `json:"role_description"`
	Context         string   `json:"context"`
	Task            string   `json:"task"`
	Model           string   `json:"model,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

// Service answers voice requests against an immutable configuration
// snapshot. It holds no per-request state; methods are safe for concurrent
// use as long as the Dialer is.
type Service struct {
	cfg     config.Config
	entries []catalog.Entry
	dialer  Dialer
}

// New creates a Service over the given configuration, catalog, and dialer.
func New(cfg config.Config, entries []catalog.Entry, dialer Dialer) *Service {
	return &Service{cfg: cfg, entries: entries, dialer: dialer}
}

// AvailableModels returns the "provider/model" identifiers of every catalog
// entry whose credentials were present at startup, in catalog order. It
// makes no network calls: the list states configured availability, not
// live-verified availability.
func (s *Service) AvailableModels() []string {
	return catalog.Available(s.entries, s.cfg.Credential)
}

// Ask resolves the request's model and temperature against the configured
// defaults, assembles the persona prompt, and performs one completion call.
// The completion's text is returned verbatim; any failure is returned as an
// error carrying the underlying message, with no retry.
func (s *Service) Ask(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}
	if model == "" {
		return "", fmt.Errorf("voices: no model requested and %s is not set", config.DefaultModelVar)
	}

	temperature := s.cfg.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	completer, err := s.dialer.Dial(model, temperature)
	if err != nil {
		return "", err
	}

	c := chats.New(
		chats.NewMessage(chats.System, SystemPrompt(req.RoleTitle, req.RoleDescription)),
		chats.NewMessage(chats.User, UserPrompt(req.Context, req.Task)),
	)

	reply, err := completer.Complete(ctx, c)
	if err != nil {
		return "", fmt.Errorf("voices: completion failed: %w", err)
	}

	return reply.Text, nil
}

// SystemPrompt assembles the system-role prompt establishing the persona.
func SystemPrompt(roleTitle, roleDescription string) string {
	return fmt.Sprintf("You are '%s'.\n\n# Role Description\n\n%s", roleTitle, roleDescription)
}

// UserPrompt assembles the user-role prompt carrying the situational input
// and the requested action.
func UserPrompt(situation, task string) string {
	return fmt.Sprintf("# Context\n\n%s\n\n# Task\n\n%s", situation, task)
}
