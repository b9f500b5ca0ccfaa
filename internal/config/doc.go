// Package config defines the format-agnostic settings model for a run and
// the Loader interface implemented by concrete file formats.
//
// Settings are layered: built-in defaults, then the process environment
// (optionally seeded from a dotenv file), then a configuration file, then
// command-line flags. Each layer only overrides the fields it sets.
package config
