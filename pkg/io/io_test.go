package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

func TestJSONRoundTrip(t *testing.T) {
	data := socialgraph.Data{
		"alice": {Followers: []string{"carol", "bob"}, Following: []string{}, AvatarURL: "https://x/alice"},
		"bob":   {Followers: []string{}, Following: []string{"alice"}},
		"carol": {AvatarURL: "https://x/carol"},
	}

	var buf bytes.Buffer
	if err := WriteJSON(data, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !got.Equal(data) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, data)
	}
}

func TestOpenInput_Missing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "nope.json"))
	if !ghserr.Is(err, ghserr.ErrCodeFileNotFound) {
		t.Errorf("OpenInput(missing) code = %q, want %q", ghserr.GetCode(err), ghserr.ErrCodeFileNotFound)
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, d socialgraph.Data)
	}{
		{
			name:  "null record",
			input: `{"alice": null}`,
			check: func(t *testing.T, d socialgraph.Data) {
				if d["alice"] == nil || d["alice"].Fetched() {
					t.Errorf("alice = %+v, want empty record", d["alice"])
				}
			},
		},
		{
			name:  "order preserved",
			input: `{"alice": {"followers": ["z", "a", "m"]}}`,
			check: func(t *testing.T, d socialgraph.Data) {
				if got := strings.Join(d["alice"].Followers, ","); got != "z,a,m" {
					t.Errorf("followers = %s", got)
				}
			},
		},
		{name: "array", input: `["alice"]`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "malformed", input: `{"alice": `, wantErr: true},
		{name: "empty key", input: `{"": {}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadJSON(strings.NewReader(tt.input))
			if tt.wantErr {
				if !ghserr.Is(err, ghserr.ErrCodeInvalidInput) {
					t.Errorf("err = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadJSON: %v", err)
			}
			tt.check(t, d)
		})
	}
}

func TestReadDOT(t *testing.T) {
	in := "digraph G {\n  a -> b;\n}\n"
	got, err := ReadDOT(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != in {
		t.Errorf("ReadDOT altered input: %q", got)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		explicit, path, want string
	}{
		{"", "graph.png", "png"},
		{"", "out/Graph.SVG", "svg"},
		{"", "data.json", "json"},
		{"svg", "graph.png", "svg"},
		{"JSON", "-", "json"},
		{"", "-", ""},
		{"", "noext", ""},
	}
	for _, tt := range tests {
		if got := ResolveFormat(tt.explicit, tt.path); got != tt.want {
			t.Errorf("ResolveFormat(%q, %q) = %q, want %q", tt.explicit, tt.path, got, tt.want)
		}
	}
}

func TestCreateOutputAndOpenInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dot")
	w, err := CreateOutput(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Discard()
	if _, err := w.Write([]byte("digraph {}")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("destination exists before Commit: %v", err)
	}
	if err := w.Commit(); err != nil {
		t.Fatal(err)
	}

	r, err := OpenInput(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	b, err := ReadDOT(r)
	if err != nil || string(b) != "digraph {}" {
		t.Errorf("read back %q, %v", b, err)
	}
	assertOnlyFile(t, filepath.Dir(path), "out.dot")
}

func TestOutput_DiscardKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.svg")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := CreateOutput(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<svg partial")); err != nil {
		t.Fatal(err)
	}
	w.Discard()
	w.Discard()

	b, err := os.ReadFile(path)
	if err != nil || string(b) != "previous" {
		t.Errorf("existing file = %q, %v; want it untouched", b, err)
	}
	assertOnlyFile(t, dir, "graph.svg")
}

func TestOutput_CommitReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := CreateOutput(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Discard()
	if err := WriteJSON(socialgraph.Data{"alice": {}}, w); err != nil {
		t.Fatal(err)
	}
	if err := w.Commit(); err != nil {
		t.Fatal(err)
	}

	r, err := OpenInput(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ReadJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got["alice"]; !ok || len(got) != 1 {
		t.Errorf("got %+v", got)
	}
	assertOnlyFile(t, dir, "graph.json")
}

func TestCreateOutput_MissingDirectory(t *testing.T) {
	if _, err := CreateOutput(filepath.Join(t.TempDir(), "no", "such", "out.svg")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 1 || names[0] != name {
		t.Errorf("directory holds %v, want only %s", names, name)
	}
}
