package fsutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInput_File(t *testing.T) {
	path := testutil.WriteOrbitMap(t, []string{"COM)A"})

	rc, err := OpenInput(path, nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "COM)A\n", string(data))
}

func TestOpenInput_Stdin(t *testing.T) {
	rc, err := OpenInput(StdinPath, strings.NewReader("COM)B\n"))
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "COM)B\n", string(data))
	require.NoError(t, rc.Close())
}

func TestOpenInput_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := OpenInput(path, nil)

	var unavailable *orbit.InputUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, path, unavailable.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenInput_Directory(t *testing.T) {
	_, err := OpenInput(t.TempDir(), nil)

	var unavailable *orbit.InputUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), "is a directory")
}
