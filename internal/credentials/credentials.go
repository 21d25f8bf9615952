// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials loads provider API keys and contact addresses from a
// KEY=VALUE file and the process environment. Strategies receive an explicit
// Credentials map at construction time instead of reading the environment
// themselves.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Known credential keys.
const (
	ElsevierAPIKey = "ELSEVIER_API_KEY"
	SpringerAPIKey = "SPRINGER_API_KEY"
	WileyAPIKey    = "WILEY_API_KEY"
	UnpaywallEmail = "UNPAYWALL_EMAIL"
)

// knownKeys lists every credential the engine understands, in the order the
// configure command prompts for them.
var knownKeys = []string{
	ElsevierAPIKey,
	SpringerAPIKey,
	WileyAPIKey,
	UnpaywallEmail,
}

// Credentials maps credential key names to their values.
type Credentials map[string]string

// Get returns the value for key, or "" when unset.
func (c Credentials) Get(key string) string {
	return c[key]
}

// Keys returns the known credential key names in prompt order.
func Keys() []string {
	return append([]string(nil), knownKeys...)
}

// DefaultPath returns the default credentials file location, ~/.fulltext_keys.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fulltext_keys"
	}
	return filepath.Join(home, ".fulltext_keys")
}

// Load reads the KEY=VALUE file at path and overlays values from the process
// environment for the known keys (environment wins). A missing file is not an
// error; Load then returns whatever the environment provides.
func Load(path string) (Credentials, error) {
	creds, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	for _, k := range knownKeys {
		if v := os.Getenv(k); v != "" {
			creds[k] = v
		}
	}
	return creds, nil
}

// ReadFile reads only the KEY=VALUE file at path, without the environment
// overlay. A missing file yields an empty map.
func ReadFile(path string) (Credentials, error) {
	creds := Credentials{}
	if path == "" {
		return creds, nil
	}
	m, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range m {
			creds[k] = v
		}
	case os.IsNotExist(err):
		// Nothing configured yet.
	default:
		return nil, fmt.Errorf("reading credentials file %s: %w", path, err)
	}
	return creds, nil
}

// Save writes creds to path in KEY=VALUE form, replacing the file.
func Save(path string, creds Credentials) error {
	if err := godotenv.Write(creds, path); err != nil {
		return fmt.Errorf("writing credentials file %s: %w", path, err)
	}
	return nil
}
