package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/orbitmap/internal/orbit"
)

// Environment variables read by FromEnv.
const (
	EnvInput     = "ORBITMAP_INPUT"
	EnvRoot      = "ORBITMAP_ROOT"
	EnvSource    = "ORBITMAP_SOURCE"
	EnvTarget    = "ORBITMAP_TARGET"
	EnvLogLevel  = "ORBITMAP_LOG_LEVEL"
	EnvLogFormat = "ORBITMAP_LOG_FORMAT"
)

// Environment returns the process environment as a map. When dotenvPath is
// set, the file's variables are added first and real environment variables
// take precedence over them, mirroring godotenv.Load.
func Environment(dotenvPath string) (map[string]string, error) {
	env := make(map[string]string)
	if dotenvPath != "" {
		fileVars, err := godotenv.Read(dotenvPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", dotenvPath, err)
		}
		for k, v := range fileVars {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env, nil
}

// FromEnv extracts the ORBITMAP_* settings from env.
func FromEnv(env map[string]string) Model {
	return Model{
		InputPath: env[EnvInput],
		Root:      orbit.Label(env[EnvRoot]),
		Source:    orbit.Label(env[EnvSource]),
		Target:    orbit.Label(env[EnvTarget]),
		LogLevel:  strings.ToLower(env[EnvLogLevel]),
		LogFormat: strings.ToLower(env[EnvLogFormat]),
	}
}
