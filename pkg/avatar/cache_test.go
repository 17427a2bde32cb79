package avatar

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCachePath(t *testing.T) {
	c := NewCache("/tmp/avatars")
	if got := c.Path("alice"); got != filepath.Join("/tmp/avatars", "alice.png") {
		t.Errorf("Path = %q", got)
	}
	if NewCache("").Dir() != DefaultDir() {
		t.Error("empty dir should select DefaultDir")
	}
}

func TestCacheWrite(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	if c.Exists("alice") {
		t.Fatal("alice should not be cached yet")
	}
	if err := c.write("alice", []byte("png")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !c.Exists("alice") {
		t.Error("alice should be cached")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "alice.png" {
		t.Errorf("unexpected cache contents: %v", entries)
	}
}

func TestCacheRejectsTraversal(t *testing.T) {
	c := NewCache(t.TempDir())
	for _, name := range []string{"..", "../evil", "a/b", ""} {
		if err := c.write(name, []byte("x")); err == nil {
			t.Errorf("write(%q) should fail", name)
		}
		if c.Exists(name) {
			t.Errorf("Exists(%q) = true", name)
		}
	}
}

func TestCacheEnsureExisting(t *testing.T) {
	c := NewCache(t.TempDir())
	if err := c.ensure(); err != nil {
		t.Errorf("ensure on existing dir: %v", err)
	}
}

func TestCacheEnsureFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(filepath.Join(file, "avatars"))
	if err := c.ensure(); err == nil {
		t.Error("ensure should fail when a parent is a regular file")
	}
}
