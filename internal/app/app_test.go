package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/orbitmap/internal/app"
	"github.com/specialistvlad/orbitmap/internal/config"
	"github.com/specialistvlad/orbitmap/internal/hcl_adapter"
	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, cfg *app.Config) ([]string, *testutil.SafeBuffer, error) {
	t.Helper()
	a, out, logs := app.SetupAppTest(t, cfg, hcl_adapter.NewLoader())
	err := a.Run(context.Background())
	return out.Lines(), logs, err
}

func TestRun_WorkedExample(t *testing.T) {
	path := testutil.WriteOrbitMap(t, testutil.WorkedExample)

	lines, logs, err := runApp(t, &app.Config{InputPath: path})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Sum of distances is 54",
		"Distance YOU to SAN is 4",
	}, lines)
	assert.Contains(t, logs.String(), "Orbit map loaded.")
}

func TestRun_SiblingsAreZeroTransfersApart(t *testing.T) {
	path := testutil.WriteOrbitMap(t, []string{"COM)A", "A)YOU", "A)SAN"})

	lines, _, err := runApp(t, &app.Config{InputPath: path})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Sum of distances is 5",
		"Distance YOU to SAN is 0",
	}, lines)
}

func TestRun_IdenticalInputGivesIdenticalOutput(t *testing.T) {
	path := testutil.WriteOrbitMap(t, testutil.WorkedExample)

	first, _, err := runApp(t, &app.Config{InputPath: path})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _, err := runApp(t, &app.Config{InputPath: path})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRun_DisconnectedTargetPrintsOnlyTheSum(t *testing.T) {
	path := testutil.WriteOrbitMap(t, testutil.CountExample)

	lines, _, err := runApp(t, &app.Config{InputPath: path})

	var disconnected *orbit.DisconnectedTargetError
	require.ErrorAs(t, err, &disconnected)
	assert.Equal(t, orbit.Label("YOU"), disconnected.Label)
	assert.Equal(t, []string{"Sum of distances is 42"}, lines)
}

func TestRun_MalformedLinePrintsNothing(t *testing.T) {
	path := testutil.WriteOrbitMap(t, []string{"COM)A", "A)B)C", "A)YOU"})

	lines, _, err := runApp(t, &app.Config{InputPath: path})

	var malformed *orbit.MalformedRelationError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
	assert.Empty(t, lines)
}

func TestRun_MissingInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	lines, _, err := runApp(t, &app.Config{InputPath: path})

	var unavailable *orbit.InputUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Empty(t, lines)
}

func TestRun_CustomLabels(t *testing.T) {
	path := testutil.WriteOrbitMap(t, []string{"SUN)A", "A)B", "B)ME", "A)SANTA"})

	lines, _, err := runApp(t, &app.Config{InputPath: path, Root: "SUN", Source: "ME", Target: "SANTA"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Sum of distances is 8",
		"Distance ME to SANTA is 1",
	}, lines)
}

func TestRun_Stdin(t *testing.T) {
	a, out, _ := app.SetupAppTest(t, &app.Config{InputPath: "-"}, hcl_adapter.NewLoader())
	a.WithStdin(strings.NewReader(strings.Join(testutil.WorkedExample, "\n")))

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "Distance YOU to SAN is 4", out.Lines()[1])
}

func TestNewApp_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"orbitmap.hcl": `
input = "from-file.txt"
labels {
  root   = "SUN"
  target = "SANTA"
}
`,
	})

	a, _, _ := app.SetupAppTest(t, &app.Config{
		ConfigPath: filepath.Join(dir, "orbitmap.hcl"),
		Root:       "GALAXY",
	}, hcl_adapter.NewLoader())

	settings := a.Settings()
	assert.Equal(t, "from-file.txt", settings.InputPath)
	assert.Equal(t, orbit.Label("GALAXY"), settings.Root, "flags override the file")
	assert.Equal(t, orbit.Label("YOU"), settings.Source, "defaults fill the gaps")
	assert.Equal(t, orbit.Label("SANTA"), settings.Target)
}

func TestNewApp_EnvFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		".env": "ORBITMAP_INPUT=from-env.txt\nORBITMAP_SOURCE=ME\n",
	})

	a, _, _ := app.SetupAppTest(t, &app.Config{EnvFile: filepath.Join(dir, ".env")}, hcl_adapter.NewLoader())

	assert.Equal(t, "from-env.txt", a.Settings().InputPath)
	assert.Equal(t, orbit.Label("ME"), a.Settings().Source)
}

func TestNewApp_NoInput(t *testing.T) {
	t.Setenv(config.EnvInput, "")

	_, err := app.NewApp(context.Background(), &testutil.SafeBuffer{}, &testutil.SafeBuffer{}, &app.Config{}, hcl_adapter.NewLoader())
	require.True(t, errors.Is(err, app.ErrNoInput), "got %v", err)
}

func TestNewApp_BadConfigFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"orbitmap.hcl": `labels {`})

	_, err := app.NewApp(context.Background(), &testutil.SafeBuffer{}, &testutil.SafeBuffer{},
		&app.Config{ConfigPath: filepath.Join(dir, "orbitmap.hcl")}, hcl_adapter.NewLoader())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestNewConfig_RejectsBadLogging(t *testing.T) {
	_, err := app.NewConfig(app.Config{LogLevel: "loud"})
	require.Error(t, err)

	_, err = app.NewConfig(app.Config{LogFormat: "xml"})
	require.Error(t, err)

	cfg, err := app.NewConfig(app.Config{InputPath: "x", LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.InputPath)
}
