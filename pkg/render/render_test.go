package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

func sampleDOT() []byte {
	data := socialgraph.Data{
		"alice": {Followers: []string{"bob"}, Following: []string{}},
		"bob":   {Followers: []string{}, Following: []string{"alice"}},
	}
	return []byte(Build(data, BuildOptions{}).DOT())
}

func needRSVG(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
}

// avatarDOT builds a graph where alice has a solid red thumbnail in dir.
func avatarDOT(t *testing.T) []byte {
	t.Helper()
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	for y := range 60 {
		for x := range 60 {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "alice.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	data := socialgraph.Data{
		"alice": {Followers: []string{"bob"}, Following: []string{}, AvatarURL: "https://x/alice"},
		"bob":   {Followers: []string{}, Following: []string{"alice"}},
	}
	g := Build(data, BuildOptions{
		Avatars:    true,
		AvatarPath: func(u string) string { return filepath.Join(dir, u+".png") },
		Exists:     func(u string) bool { return u == "alice" },
	})
	return []byte(g.DOT())
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(context.Background(), sampleDOT(), "svg", &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("output is not SVG: %.200s", out)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Error("SVG does not contain node labels")
	}
}

func TestRender_SVGEmbedsAvatars(t *testing.T) {
	svg, err := RenderSVG(context.Background(), avatarDOT(t))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<image")) {
		t.Fatalf("SVG has no <image> element:\n%s", svg)
	}
	if !bytes.Contains(svg, []byte("data:image/png;base64,")) {
		t.Errorf("avatar is not embedded as a data URI")
	}
	if bytes.Contains(svg, []byte("alice.png")) {
		t.Errorf("SVG still references the cache file")
	}
}

func TestRender_PNGShowsAvatars(t *testing.T) {
	needRSVG(t)
	var buf bytes.Buffer
	if err := Render(context.Background(), avatarDOT(t), "PNG", &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	red := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r > 0xc000 && g < 0x4000 && bl < 0x4000 {
				red++
			}
		}
	}
	if red < 100 {
		t.Errorf("found %d red pixels, avatar not drawn", red)
	}
}

func TestRender_JPEG(t *testing.T) {
	needRSVG(t)
	var buf bytes.Buffer
	if err := Render(context.Background(), sampleDOT(), "jpg", &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xff, 0xd8}) {
		t.Error("output is not a JPEG")
	}
}

func TestRender_PDF(t *testing.T) {
	needRSVG(t)
	var buf bytes.Buffer
	if err := Render(context.Background(), sampleDOT(), "pdf", &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRender_MissingRSVG(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	err := Render(context.Background(), sampleDOT(), "png", &bytes.Buffer{})
	if !ghserr.Is(err, ghserr.ErrCodeUnsupported) {
		t.Errorf("err = %v, want UNSUPPORTED", err)
	}
}

func TestRender_XDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(context.Background(), sampleDOT(), "xdot", &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "_draw_") {
		t.Errorf("output has no xdot drawing attributes: %.200s", buf.String())
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	err := Render(context.Background(), sampleDOT(), "bmp", &bytes.Buffer{})
	if !ghserr.Is(err, ghserr.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestRender_InvalidDOT(t *testing.T) {
	err := Render(context.Background(), []byte("digraph {"), "svg", &bytes.Buffer{})
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestInlineImages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a&b.png")
	if err := os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nrest"), 0o644); err != nil {
		t.Fatal(err)
	}
	escaped := strings.ReplaceAll(path, "&", "&amp;")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "file reference",
			in:   `<image xlink:href="` + escaped + `" width="60px"/>`,
			want: `<image xlink:href="data:image/png;base64,iVBORw0KGgpyZXN0" width="60px"/>`,
		},
		{
			name: "plain href",
			in:   `<image href="` + escaped + `"/>`,
			want: `<image href="data:image/png;base64,iVBORw0KGgpyZXN0"/>`,
		},
		{
			name: "missing file kept",
			in:   `<image xlink:href="/nonexistent/x.png"/>`,
			want: `<image xlink:href="/nonexistent/x.png"/>`,
		},
		{
			name: "data uri kept",
			in:   `<image xlink:href="data:image/png;base64,AAAA"/>`,
			want: `<image xlink:href="data:image/png;base64,AAAA"/>`,
		},
		{
			name: "links untouched",
			in:   `<a xlink:href="` + escaped + `">x</a>`,
			want: `<a xlink:href="` + escaped + `">x</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(inlineImages([]byte(tt.in))); got != tt.want {
				t.Errorf("inlineImages() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHostFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alice.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := hostFS{}.Open(strings.TrimPrefix(filepath.ToSlash(path), "/"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	f.Close()
}

func TestIsSupported(t *testing.T) {
	tests := map[string]bool{
		"svg": true, "png": true, "PNG": true, "jpg": true, "jpeg": true, "pdf": true, "xdot": true,
		"json": false, "dot": false, "bmp": false, "": false,
	}
	for format, want := range tests {
		if got := IsSupported(format); got != want {
			t.Errorf("IsSupported(%q) = %v, want %v", format, got, want)
		}
	}
}
