// Package catalog declares which LLM providers exist, which environment
// variables hold their credentials, and which models they serve. Adding a
// provider is a data change: append an Entry (or ship a YAML overlay), no
// logic changes required.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry describes one provider: the env vars that must all be present and
// non-empty for the provider to be usable, and its known model identifiers.
// Kind selects the adapter implementation; it defaults to Name, so only
// custom entries pointing a known API shape at another vendor need to set it.
type Entry struct {
	Name           string   `yaml:"name"`
	Kind           string   `yaml:"kind"`
	BaseURL        string   `yaml:"base_url"`
	CredentialVars []string `yaml:"credential_vars"`
	Models         []string `yaml:"models"`
}

// AdapterKind returns the adapter kind for the entry, defaulting to its name.
func (e Entry) AdapterKind() string {
	if e.Kind != "" {
		return e.Kind
	}
	return e.Name
}

// Configured reports whether every credential var of the entry is present
// and non-empty according to lookup.
func (e Entry) Configured(lookup func(string) string) bool {
	if len(e.CredentialVars) == 0 {
		return false
	}
	for _, v := range e.CredentialVars {
		if lookup(v) == "" {
			return false
		}
	}
	return true
}

// Default returns the built-in provider table. Order is significant: it is
// the priority order in which available models are listed.
func Default() []Entry {
	return []Entry{
		{
			Name:           "openai",
			CredentialVars: []string{"OPENAI_API_KEY"},
			Models: []string{
				"gpt-4o",
				"gpt-4o-mini",
				"gpt-4.1",
				"gpt-4.1-mini",
				"o3-mini",
			},
		},
		{
			Name:           "anthropic",
			CredentialVars: []string{"ANTHROPIC_API_KEY"},
			Models: []string{
				"claude-sonnet-4-5",
				"claude-opus-4-1",
				"claude-3-7-sonnet-latest",
				"claude-3-5-haiku-latest",
			},
		},
		{
			Name:           "gemini",
			CredentialVars: []string{"GEMINI_API_KEY"},
			Models: []string{
				"gemini-2.5-pro",
				"gemini-2.5-flash",
				"gemini-2.0-flash",
			},
		},
		{
			Name:           "xai",
			Kind:           "grok",
			CredentialVars: []string{"XAI_API_KEY"},
			Models: []string{
				"grok-4",
				"grok-3",
				"grok-3-mini",
			},
		},
	}
}

// Load reads a YAML provider table from path. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing, so overlay files
// can point base URLs and similar settings at environment configuration.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var entries []Entry
	if err := yaml.Unmarshal([]byte(expanded), &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: entry %d: name is required", i)
		}
		if len(e.CredentialVars) == 0 {
			return nil, fmt.Errorf("catalog: entry %q: credential_vars is required", e.Name)
		}
	}

	return entries, nil
}

// Available returns the "provider/model" identifiers of every entry whose
// credentials are configured, in table order. An empty credential set yields
// an empty list, not an error.
func Available(entries []Entry, lookup func(string) string) []string {
	var out []string
	for _, e := range entries {
		if !e.Configured(lookup) {
			continue
		}
		for _, m := range e.Models {
			out = append(out, e.Name+"/"+m)
		}
	}
	return out
}

// Find returns the entry with the given provider name.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
