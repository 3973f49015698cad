// Package rotate writes a line stream into a set of files, starting a new
// file every MaxLines lines and keeping at most MaxFiles of them.
//
// The newest file is Path itself; older ones are Path.1, Path.2, ... with
// the highest suffix the oldest.
package rotate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Options configures a Writer.
type Options struct {
	// Path of the current file.
	Path string
	// MaxFiles is the number of files kept, including the current one.
	MaxFiles int
	// MaxLines is the number of lines written to a file before rotating.
	MaxLines int
	// Perm is the mode for new files. Default 0640.
	Perm os.FileMode
}

// Writer is an io.WriteCloser that rotates on line boundaries.
// It is safe for concurrent use.
type Writer struct {
	opts  Options
	mu    sync.Mutex
	file  *os.File
	lines int
}

// Open creates the directory if needed and opens Path for appending.
// Lines already in Path count towards MaxLines.
func Open(opts Options) (*Writer, error) {
	if opts.Path == "" {
		return nil, errors.New("rotate: path is required")
	}
	if opts.MaxFiles < 1 || opts.MaxLines < 1 {
		return nil, errors.Errorf("rotate: max files (%d) and max lines (%d) must be positive", opts.MaxFiles, opts.MaxLines)
	}
	if opts.Perm == 0 {
		opts.Perm = 0640
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0750); err != nil {
		return nil, errors.Wrap(err, "rotate: create directory")
	}

	w := &Writer{opts: opts}
	existing, err := os.ReadFile(opts.Path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "rotate: read %s", opts.Path)
	}
	w.lines = bytes.Count(existing, []byte{'\n'})
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Writer) open() error {
	f, err := os.OpenFile(w.opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, w.opts.Perm)
	if err != nil {
		return errors.Wrapf(err, "rotate: open %s", w.opts.Path)
	}
	w.file = f
	return nil
}

// Write writes p, rotating whenever the current file reaches MaxLines.
// A line is never split across files.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, os.ErrClosed
	}
	written := 0
	for len(p) > 0 {
		if w.lines >= w.opts.MaxLines {
			if err := w.rotate(); err != nil {
				return written, err
			}
		}
		chunk := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			chunk = p[:i+1]
		}
		n, err := w.file.Write(chunk)
		written += n
		if err != nil {
			return written, errors.Wrap(err, "rotate: write")
		}
		if chunk[len(chunk)-1] == '\n' {
			w.lines++
		}
		p = p[len(chunk):]
	}
	return written, nil
}

// rotate shifts Path.k to Path.k+1, dropping the oldest, and starts an
// empty Path. Path is reopened even when shifting fails, so the writer
// keeps appending to the current file and retries after MaxLines more lines.
func (w *Writer) rotate() error {
	err := w.file.Close()
	w.file = nil
	if err != nil {
		err = errors.Wrap(err, "rotate: close")
	} else {
		err = w.shift()
	}

	w.lines = 0
	if openErr := w.open(); err == nil {
		err = openErr
	}
	return err
}

func (w *Writer) shift() error {
	keep := w.opts.MaxFiles - 1
	if keep == 0 {
		if err := os.Remove(w.opts.Path); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "rotate: remove")
		}
		return nil
	}
	_ = os.Remove(w.name(keep))
	for k := keep - 1; k >= 1; k-- {
		if err := os.Rename(w.name(k), w.name(k+1)); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "rotate: rename")
		}
	}
	if err := os.Rename(w.opts.Path, w.name(1)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "rotate: rename")
	}
	return nil
}

func (w *Writer) name(k int) string {
	return fmt.Sprintf("%s.%d", w.opts.Path, k)
}

// Sync flushes the current file to disk.
func (w *Writer) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Close closes the current file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
