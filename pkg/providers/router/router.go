// Package router resolves "provider/model" identifiers to configured
// provider adapters. It is the single dispatch point between the model
// identifier a caller names and the HTTP adapter that serves it.
package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/germanamz/thevoices/pkg/catalog"
	"github.com/germanamz/thevoices/pkg/modeladapter"
	"github.com/germanamz/thevoices/pkg/providers/anthropic"
	"github.com/germanamz/thevoices/pkg/providers/gemini"
	"github.com/germanamz/thevoices/pkg/providers/grok"
	"github.com/germanamz/thevoices/pkg/providers/openai"
)

// Factory creates a Completer for one adapter kind. The key is the joined
// credential value; model is the bare model name without the provider prefix.
type Factory func(entry catalog.Entry, key, model string, client *http.Client) modeladapter.Completer

// Router maps model identifiers of the form "provider/model" to adapters
// built from the catalog and a credential lookup. The zero value is not
// usable; create one with New.
type Router struct {
	entries   []catalog.Entry
	lookup    func(string) string
	client    *http.Client
	factories map[string]Factory
}

// New creates a Router over the given catalog entries. lookup resolves
// credential env var names to values (typically config.Config.Credential).
// A nil client falls back to each adapter's default.
func New(entries []catalog.Entry, lookup func(string) string, client *http.Client) *Router {
	return &Router{
		entries: entries,
		lookup:  lookup,
		client:  client,
		factories: map[string]Factory{
			"openai":    newOpenAI,
			"anthropic": newAnthropic,
			"gemini":    newGemini,
			"grok":      newGrok,
		},
	}
}

// Register adds a custom adapter factory under the given kind, extending the
// router beyond the built-in adapters.
func (r *Router) Register(kind string, f Factory) {
	r.factories[kind] = f
}

// Dial resolves a "provider/model" identifier to a ready-to-use Completer
// with the given sampling temperature. It fails when the identifier is
// malformed, the provider is not in the catalog, the adapter kind is
// unknown, or the provider's credentials are not configured.
func (r *Router) Dial(model string, temperature float64) (modeladapter.Completer, error) {
	providerName, modelName, ok := strings.Cut(model, "/")
	if !ok || providerName == "" || modelName == "" {
		return nil, fmt.Errorf("router: malformed model identifier %q (want \"provider/model\")", model)
	}

	entry, ok := catalog.Find(r.entries, providerName)
	if !ok {
		return nil, fmt.Errorf("router: unknown provider %q (known: %s)", providerName, strings.Join(r.providerNames(), ", "))
	}

	factory, ok := r.factories[entry.AdapterKind()]
	if !ok {
		return nil, fmt.Errorf("router: provider %q: unknown adapter kind %q", providerName, entry.AdapterKind())
	}

	if !entry.Configured(r.lookup) {
		return nil, fmt.Errorf("router: provider %q: credentials not configured (set %s)",
			providerName, strings.Join(entry.CredentialVars, ", "))
	}

	// Single-var providers pass the var's value; multi-var entries are the
	// factory's business to unpack via the entry.
	key := r.lookup(entry.CredentialVars[0])

	c := factory(entry, key, modelName, r.client)
	if a, ok := c.(temperatureSetter); ok {
		a.SetTemperature(temperature)
	}

	return c, nil
}

// temperatureSetter is implemented by adapters whose sampling temperature can
// be set after construction. All built-in adapters satisfy it through the
// embedded ModelAdapter.
type temperatureSetter interface {
	SetTemperature(t float64)
}

func (r *Router) providerNames() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

func newOpenAI(entry catalog.Entry, key, model string, client *http.Client) modeladapter.Completer {
	baseURL := entry.BaseURL
	if baseURL == "" {
		baseURL = openai.DefaultBaseURL
	}

	a := openai.New(baseURL, key, model)
	a.Client = client
	return a
}

func newAnthropic(entry catalog.Entry, key, model string, client *http.Client) modeladapter.Completer {
	baseURL := entry.BaseURL
	if baseURL == "" {
		baseURL = anthropic.DefaultBaseURL
	}

	a := anthropic.New(baseURL, key, model)
	a.Client = client
	return a
}

func newGemini(entry catalog.Entry, key, model string, client *http.Client) modeladapter.Completer {
	baseURL := entry.BaseURL
	if baseURL == "" {
		baseURL = gemini.DefaultBaseURL
	}

	a := gemini.New(baseURL, key, model)
	a.Client = client
	return a
}

func newGrok(entry catalog.Entry, key, model string, client *http.Client) modeladapter.Completer {
	a := grok.New(key, client)
	if entry.BaseURL != "" {
		a.BaseURL = entry.BaseURL
	}
	a.Name = model
	return a
}
