// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads platform API credentials from a directory of
// plain-text files. Each file in the directory represents one credential:
// the filename is the key name and the file contents (trimmed) are the value.
//
// Supported key files: spotify-client-id, spotify-client-secret,
// youtube-api-key, soundcloud-client-id, discogs-consumer-key,
// discogs-consumer-secret, allmusic-api-key, secondhandsongs-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Provider is a read-only credential lookup shared across concurrent
// searches. The zero value has no credentials.
type Provider struct {
	values map[string]string
}

// NewProvider builds a Provider from an in-memory key/value map. Intended
// for tests and embedding callers that manage credentials themselves.
func NewProvider(values map[string]string) *Provider {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			copied[k] = v
		}
	}
	return &Provider{values: copied}
}

// Get returns the credential value for key, or "" when absent.
func (p *Provider) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.values[key]
}

// Has reports whether every named credential is present and non-empty.
func (p *Provider) Has(keys ...string) bool {
	for _, k := range keys {
		if p.Get(k) == "" {
			return false
		}
	}
	return len(keys) > 0
}

// Keys returns the names of all loaded credentials.
func (p *Provider) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	return keys
}

// Load reads all files in dir and returns a Provider over them. A missing
// directory is not an error; Load returns an empty Provider. Unreadable
// files produce a warning on stderr but do not abort.
func Load(dir string) (*Provider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewProvider(nil), nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	values := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			values[name] = value
		}
	}

	return &Provider{values: values}, nil
}
