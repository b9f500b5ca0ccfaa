// Package testutil holds fixtures and helpers shared by the test suites of
// several packages. It must not import any package that is under test.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CountExample is the reference orbit map without YOU and SAN. Its depth sum
// is 42.
var CountExample = WorkedExample[:11:11]

// WorkedExample extends CountExample with YOU (depth 7) and SAN (depth 5).
// Its depth sum is 54 and YOU is 4 transfers away from SAN.
var WorkedExample = []string{
	"COM)B",
	"B)C",
	"C)D",
	"D)E",
	"E)F",
	"B)G",
	"G)H",
	"D)I",
	"E)J",
	"J)K",
	"K)L",
	"K)YOU",
	"I)SAN",
}

// WriteFiles writes every name→content pair below a fresh temporary
// directory and returns that directory. Names may contain subdirectories.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// WriteOrbitMap writes the lines as a newline-terminated orbit map and
// returns its path.
func WriteOrbitMap(t *testing.T, lines []string) string {
	t.Helper()

	dir := WriteFiles(t, map[string]string{"orbits.txt": strings.Join(lines, "\n") + "\n"})
	return filepath.Join(dir, "orbits.txt")
}

// FailingReader is an io.Reader that always fails with Err.
type FailingReader struct {
	Err error
}

func (r FailingReader) Read([]byte) (int, error) {
	return 0, r.Err
}
