package rotate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, w *Writer, from, to int) {
	t.Helper()
	for i := from; i < to; i++ {
		_, err := fmt.Fprintf(w, "line %d\n", i)
		require.NoError(t, err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestWriter_RotatesByLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app")
	w, err := Open(Options{Path: path, MaxFiles: 3, MaxLines: 2})
	require.NoError(t, err)

	writeLines(t, w, 0, 10)
	require.NoError(t, w.Close())

	require.Equal(t, []string{"line 8", "line 9"}, readLines(t, path))
	require.Equal(t, []string{"line 6", "line 7"}, readLines(t, path+".1"))
	require.Equal(t, []string{"line 4", "line 5"}, readLines(t, path+".2"))
	require.NoFileExists(t, path+".3")
}

func TestWriter_FileCountAfterNFiles(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		dir := t.TempDir()
		path := filepath.Join(dir, "out")
		w, err := Open(Options{Path: path, MaxFiles: 3, MaxLines: 4})
		require.NoError(t, err)
		writeLines(t, w, 0, n*4)
		require.NoError(t, w.Close())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, min(n, 3), "after %d full files", n)
	}
}

func TestWriter_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "only")
	w, err := Open(Options{Path: path, MaxFiles: 1, MaxLines: 3})
	require.NoError(t, err)

	writeLines(t, w, 0, 7)
	require.NoError(t, w.Close())

	require.Equal(t, []string{"line 6"}, readLines(t, path))
	require.NoFileExists(t, path+".1")
}

func TestWriter_LinesNeverSplit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks")
	w, err := Open(Options{Path: path, MaxFiles: 2, MaxLines: 1})
	require.NoError(t, err)

	_, err = w.Write([]byte("a\nb"))
	require.NoError(t, err)
	_, err = w.Write([]byte("c\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, []string{"bc"}, readLines(t, path))
	require.Equal(t, []string{"a"}, readLines(t, path+".1"))
}

func TestWriter_CountsExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume")
	require.NoError(t, os.WriteFile(path, []byte("old 1\nold 2\n"), 0o640))

	w, err := Open(Options{Path: path, MaxFiles: 2, MaxLines: 2})
	require.NoError(t, err)
	writeLines(t, w, 0, 1)
	require.NoError(t, w.Close())

	require.Equal(t, []string{"line 0"}, readLines(t, path))
	require.Equal(t, []string{"old 1", "old 2"}, readLines(t, path+".1"))
}

func TestWriter_KeepsWritingAfterFailedRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stuck")
	// A non-empty directory where the first backup goes makes the rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(path+".1", "busy"), 0o750))

	w, err := Open(Options{Path: path, MaxFiles: 2, MaxLines: 1})
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte("a\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("b\n"))
	require.Error(t, err)

	_, err = w.Write([]byte("c\n"))
	require.NoError(t, err, "the current file stays open")
	require.NoError(t, w.Sync())
	require.Equal(t, []string{"a", "c"}, readLines(t, path))
}

func TestOpen_InvalidOptions(t *testing.T) {
	_, err := Open(Options{MaxFiles: 1, MaxLines: 1})
	require.Error(t, err)

	_, err = Open(Options{Path: filepath.Join(t.TempDir(), "x"), MaxFiles: 0, MaxLines: 1})
	require.Error(t, err)

	_, err = Open(Options{Path: filepath.Join(t.TempDir(), "x"), MaxFiles: 1, MaxLines: -1})
	require.Error(t, err)
}

func TestWriter_WriteAfterClose(t *testing.T) {
	w, err := Open(Options{Path: filepath.Join(t.TempDir(), "x"), MaxFiles: 1, MaxLines: 1})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late\n"))
	require.ErrorIs(t, err, os.ErrClosed)
	require.NoError(t, w.Sync())
}
