package io

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
)

// Stream is the path that selects standard input or standard output.
const Stream = "-"

// Data formats understood besides the rendered image formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// InputFormats lists the formats accepted as input.
var InputFormats = []string{FormatJSON, FormatDOT}

// IsStream reports whether path denotes stdin or stdout.
func IsStream(path string) bool { return path == Stream }

// FormatFromPath returns the lowercased extension of path without the dot,
// or "" if there is none.
func FormatFromPath(path string) string {
	if IsStream(path) {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ResolveFormat returns explicit if set, otherwise the format inferred from
// path's extension.
func ResolveFormat(explicit, path string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	return FormatFromPath(path)
}

// OpenInput opens path for reading, or returns stdin for [Stream].
// Closing the returned stdin is a no-op.
func OpenInput(path string) (io.ReadCloser, error) {
	if IsStream(path) {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ghserr.New(ghserr.ErrCodeFileNotFound, "input file %s does not exist", path)
	}
	return f, err
}

// Output is the destination of a graph. For a file, writes go to a
// temporary sibling that replaces the file only on Commit, so a failed run
// leaves an existing file untouched. For [Stream], writes go to stdout.
type Output struct {
	path string
	w    io.Writer
	tmp  *os.File // nil for stdout or once committed or discarded
}

// CreateOutput prepares an Output for path.
func CreateOutput(path string) (*Output, error) {
	if IsStream(path) {
		return &Output{path: path, w: os.Stdout}, nil
	}
	dir, base := filepath.Split(path)
	name := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return nil, err
	}
	return &Output{path: path, w: tmp, tmp: tmp}, nil
}

func (o *Output) Write(p []byte) (int, error) { return o.w.Write(p) }

// Commit moves the written data into place. It is a no-op for stdout.
func (o *Output) Commit() error {
	if o.tmp == nil {
		return nil
	}
	tmp := o.tmp
	o.tmp = nil
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), o.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Discard drops uncommitted data. It is safe to defer next to Commit.
func (o *Output) Discard() {
	if o.tmp == nil {
		return
	}
	o.tmp.Close()
	os.Remove(o.tmp.Name())
	o.tmp = nil
}
