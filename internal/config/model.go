package config

import "github.com/specialistvlad/orbitmap/internal/orbit"

// Model holds every setting of a run. The zero value of a field means "not
// set by this layer".
type Model struct {
	InputPath string
	Root      orbit.Label
	Source    orbit.Label
	Target    orbit.Label
	LogLevel  string
	LogFormat string
}

// Defaults returns the built-in settings. InputPath has no default.
func Defaults() Model {
	return Model{
		Root:      orbit.DefaultRoot,
		Source:    orbit.DefaultSource,
		Target:    orbit.DefaultTarget,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Merge returns a copy of m with every non-empty field of over applied.
func (m Model) Merge(over Model) Model {
	if over.InputPath != "" {
		m.InputPath = over.InputPath
	}
	if over.Root != "" {
		m.Root = over.Root
	}
	if over.Source != "" {
		m.Source = over.Source
	}
	if over.Target != "" {
		m.Target = over.Target
	}
	if over.LogLevel != "" {
		m.LogLevel = over.LogLevel
	}
	if over.LogFormat != "" {
		m.LogFormat = over.LogFormat
	}
	return m
}
