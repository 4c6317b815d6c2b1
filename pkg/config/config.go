// Package config captures process-wide configuration from the environment
// once at startup. Operations receive the resulting immutable Config value
// instead of reading the environment ad hoc, so a request never observes a
// half-updated view of the credentials.
package config

import (
	"github.com/germanamz/thevoices/pkg/catalog"
)

// DefaultModelVar is the environment variable naming the model used when a
// request does not specify one.
const DefaultModelVar = "THEVOICES_MODEL"

// DefaultTemperature is the sampling temperature used when a request does
// not specify one.
const DefaultTemperature = 0.7

// Config is an immutable snapshot of the environment-derived configuration.
// Create one with New at process start and pass it by value.
type Config struct {
	DefaultModel       string
	DefaultTemperature float64

	credentials map[string]string
}

// New builds a Config by snapshotting, via lookup, the default model variable
// and every credential variable the catalog entries name. lookup is
// typically os.Getenv; tests pass a fake.
func New(entries []catalog.Entry, lookup func(string) string) Config {
	creds := make(map[string]string)
	for _, e := range entries {
		for _, v := range e.CredentialVars {
			creds[v] = lookup(v)
		}
	}

	return Config{
		DefaultModel:       lookup(DefaultModelVar),
		DefaultTemperature: DefaultTemperature,
		credentials:        creds,
	}
}

// Credential returns the snapshotted value of the named credential variable,
// or an empty string if it was absent at startup.
func (c Config) Credential(name string) string {
	return c.credentials[name]
}
