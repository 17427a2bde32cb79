package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/goccy/go-graphviz"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
)

// Formats produced by Graphviz itself.
var layoutFormats = map[string]graphviz.Format{
	"svg":  graphviz.SVG,
	"xdot": graphviz.XDOT,
}

// Formats converted from SVG by rsvg-convert. Graphviz's own raster
// renderer cannot load node images.
var convertedFormats = []string{"png", "jpg", "jpeg", "pdf"}

// IsSupported reports whether Render can produce format.
func IsSupported(format string) bool {
	f := strings.ToLower(format)
	if _, ok := layoutFormats[f]; ok {
		return true
	}
	for _, c := range convertedFormats {
		if c == f {
			return true
		}
	}
	return false
}

// Render lays out dot with the Graphviz dot engine and writes the result to w
// in the given format.
func Render(ctx context.Context, dot []byte, format string, w io.Writer) error {
	format = strings.ToLower(format)
	if format == "xdot" {
		return layout(ctx, dot, graphviz.XDOT, w)
	}
	if !IsSupported(format) {
		return ghserr.New(ghserr.ErrCodeInvalidFormat, "unsupported output format %q", format)
	}

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case "svg":
		out = svg
	case "pdf":
		out, err = ToPDF(ctx, svg)
	case "png":
		out, err = ToPNG(ctx, svg, 1)
	case "jpg", "jpeg":
		out, err = ToJPEG(ctx, svg)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// RenderSVG lays out dot and returns a self-contained SVG: node images are
// embedded as data URIs instead of referencing files on disk.
func RenderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := layout(ctx, dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return inlineImages(buf.Bytes()), nil
}

// ToJPEG converts SVG bytes to JPEG through an intermediate PNG.
func ToJPEG(ctx context.Context, svg []byte) ([]byte, error) {
	png, err := ToPNG(ctx, svg, 1)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(png))
	if err != nil {
		return nil, ghserr.Wrap(ghserr.ErrCodeInternal, err, "decode rasterized graph")
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, ghserr.Wrap(ghserr.ErrCodeInternal, err, "encode JPEG")
	}
	return buf.Bytes(), nil
}

var hostFSOnce sync.Once

func layout(ctx context.Context, dot []byte, format graphviz.Format, w io.Writer) error {
	hostFSOnce.Do(func() { graphviz.SetFileSystem(hostFS{}) })

	gv, err := graphviz.New(ctx)
	if err != nil {
		return ghserr.Wrap(ghserr.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.DOT)

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return ghserr.Wrap(ghserr.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, w); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}
