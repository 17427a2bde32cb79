package render

import (
	"encoding/base64"
	"html"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// hostFS gives Graphviz, which runs in a wasm sandbox, read access to node
// images. The sandbox hands over absolute paths without their leading
// slash, so a name is tried from the root first and then relative to the
// working directory.
type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	f, err := os.Open(filepath.FromSlash("/" + name))
	if err == nil {
		return f, nil
	}
	return os.Open(filepath.FromSlash(name))
}

var imageHrefRe = regexp.MustCompile(`(<image\b[^>]*?\s(?:xlink:)?href=")([^"]*)(")`)

// inlineImages replaces file references of <image> elements with data
// URIs. rsvg-convert refuses external files when reading from stdin, and
// an SVG that embeds its avatars can be moved around freely. References
// that cannot be read are left alone.
func inlineImages(svg []byte) []byte {
	return imageHrefRe.ReplaceAllFunc(svg, func(m []byte) []byte {
		parts := imageHrefRe.FindSubmatch(m)
		href := html.UnescapeString(string(parts[2]))
		if href == "" || strings.HasPrefix(href, "data:") {
			return m
		}
		data, err := os.ReadFile(strings.TrimPrefix(href, "file://"))
		if err != nil {
			return m
		}
		uri := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)

		out := make([]byte, 0, len(parts[1])+len(uri)+len(parts[3]))
		out = append(out, parts[1]...)
		out = append(out, uri...)
		return append(out, parts[3]...)
	})
}
