package httputil

import (
	"net/http"
	"regexp"
	"strings"
)

// linkRe matches a single entry of an RFC 8288 Link header:
//
//	<https://api.github.com/user/1/followers?page=2>; rel="next"
var linkRe = regexp.MustCompile(`<([^>]*)>\s*((?:;\s*[^;,]+)*)`)

// relRe extracts the rel parameter, quoted or bare.
var relRe = regexp.MustCompile(`;\s*rel="?([^";]+)"?`)

// ParseLinks parses an RFC 8288 Link header value into a map of rel → URL.
// A rel parameter may carry several space-separated relation types; each one
// is registered. When the same rel appears twice, the first URL wins.
func ParseLinks(header string) map[string]string {
	links := make(map[string]string)
	for _, m := range linkRe.FindAllStringSubmatch(header, -1) {
		rel := relRe.FindStringSubmatch(m[2])
		if rel == nil {
			continue
		}
		for _, r := range strings.Fields(rel[1]) {
			if _, ok := links[r]; !ok {
				links[r] = m[1]
			}
		}
	}
	return links
}

// NextPage returns the rel="next" URL from the response's Link header,
// or "" when the response is the last page.
func NextPage(h http.Header) string {
	var next string
	for _, v := range h.Values("Link") {
		if u, ok := ParseLinks(v)["next"]; ok {
			next = u
			break
		}
	}
	return next
}
