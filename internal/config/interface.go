package config

import "context"

// Loader is the interface for a format-specific configuration file loader.
type Loader interface {
	// Load reads the file at path and returns the settings it defines.
	// Fields the file does not mention are left empty. env is exposed to the
	// file's expressions where the format supports it.
	Load(ctx context.Context, path string, env map[string]string) (*Model, error)
}
