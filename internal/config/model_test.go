package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_OnlySetFieldsOverride(t *testing.T) {
	base := Defaults()
	merged := base.Merge(Model{InputPath: "orbits.txt", Target: "SANTA"})

	want := Model{
		InputPath: "orbits.txt",
		Root:      "COM",
		Source:    "YOU",
		Target:    "SANTA",
		LogLevel:  "warn",
		LogFormat: "text",
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merged model mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, base.InputPath, "Merge must not modify the receiver")
}

func TestFromEnv(t *testing.T) {
	m := FromEnv(map[string]string{
		EnvInput:     "/data/day6.txt",
		EnvRoot:      "SUN",
		EnvLogFormat: "JSON",
		"UNRELATED":  "x",
	})

	assert.Equal(t, Model{InputPath: "/data/day6.txt", Root: "SUN", LogFormat: "json"}, m)
}

func TestEnvironment_DotenvIsOverriddenByProcess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "ORBITMAP_TEST_FROM_FILE=file\nORBITMAP_TEST_SHADOWED=file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ORBITMAP_TEST_SHADOWED", "process")

	env, err := Environment(path)
	require.NoError(t, err)

	assert.Equal(t, "file", env["ORBITMAP_TEST_FROM_FILE"])
	assert.Equal(t, "process", env["ORBITMAP_TEST_SHADOWED"])
}

func TestEnvironment_MissingDotenv(t *testing.T) {
	_, err := Environment(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read env file")
}
