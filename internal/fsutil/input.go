// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io"
	"os"

	"github.com/specialistvlad/orbitmap/internal/orbit"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// OpenInput opens the orbit map at path for reading. A path of "-" reads
// from stdin, which is never closed by the returned ReadCloser. Any failure
// is reported as *orbit.InputUnavailableError.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(stdin), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &orbit.InputUnavailableError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &orbit.InputUnavailableError{Path: path, Err: errors.New("is a directory")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &orbit.InputUnavailableError{Path: path, Err: err}
	}
	return f, nil
}
