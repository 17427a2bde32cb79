package avatar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
)

// DefaultDir returns the default avatar cache directory under the platform
// temp directory.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), "github-social-graph")
}

// Cache stores processed avatar thumbnails as <dir>/<username>.png.
// A file's existence is the only validity signal: entries never expire and
// are never overwritten once present.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir, or [DefaultDir] if dir is empty.
// The directory is not created until something is written.
func NewCache(dir string) *Cache {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Cache{dir: dir}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Path returns the deterministic file path of username's thumbnail.
func (c *Cache) Path(username string) string {
	return filepath.Join(c.dir, username+".png")
}

// Exists reports whether a thumbnail for username is cached. Usernames that
// cannot form a file name are never cached.
func (c *Cache) Exists(username string) bool {
	if ghserr.ValidateFileComponent(username) != nil {
		return false
	}
	_, err := os.Stat(c.Path(username))
	return err == nil
}

// ensure creates the cache directory. An existing directory is not an error.
func (c *Cache) ensure() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create avatar cache %s: %w", c.dir, err)
	}
	return nil
}

// write stores data atomically: it goes to a uniquely named temp file in the
// cache directory first and is renamed into place, so readers never observe a
// partial image.
func (c *Cache) write(username string, data []byte) error {
	if err := ghserr.ValidateFileComponent(username); err != nil {
		return err
	}
	tmp := filepath.Join(c.dir, "."+username+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, c.Path(username)); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return nil
}
