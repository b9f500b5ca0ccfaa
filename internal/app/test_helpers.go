package app

import (
	"context"
	"os"
	"testing"

	"github.com/specialistvlad/orbitmap/internal/config"
	"github.com/specialistvlad/orbitmap/internal/testutil"
	"github.com/stretchr/testify/require"
)

// SetupAppTest creates a new app instance for system testing. Logging is
// forced to debug so assertions can inspect it.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	appConfig.LogLevel = "debug"

	testApp, err := NewApp(context.Background(), outBuffer, logBuffer, appConfig, loader)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("ORBITMAP_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
