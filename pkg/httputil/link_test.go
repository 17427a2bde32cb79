package httputil

import (
	"net/http"
	"testing"
)

func TestParseLinks(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "github next and last",
			header: `<https://api.github.com/user/1/followers?page=2>; rel="next", <https://api.github.com/user/1/followers?page=5>; rel="last"`,
			want: map[string]string{
				"next": "https://api.github.com/user/1/followers?page=2",
				"last": "https://api.github.com/user/1/followers?page=5",
			},
		},
		{
			name:   "unquoted rel",
			header: `<https://example.com/?page=3>; rel=next`,
			want:   map[string]string{"next": "https://example.com/?page=3"},
		},
		{
			name:   "multiple rel types",
			header: `<https://example.com/a>; rel="prev first"`,
			want: map[string]string{
				"prev":  "https://example.com/a",
				"first": "https://example.com/a",
			},
		},
		{
			name:   "extra params",
			header: `<https://example.com/b>; title="x"; rel="next"`,
			want:   map[string]string{"next": "https://example.com/b"},
		},
		{
			name:   "missing rel",
			header: `<https://example.com/c>; title="x"`,
			want:   map[string]string{},
		},
		{
			name:   "empty",
			header: "",
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLinks(tt.header)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseLinks() = %v, want %v", got, tt.want)
			}
			for rel, u := range tt.want {
				if got[rel] != u {
					t.Errorf("ParseLinks()[%q] = %q, want %q", rel, got[rel], u)
				}
			}
		})
	}
}

func TestNextPage(t *testing.T) {
	h := http.Header{}
	if got := NextPage(h); got != "" {
		t.Errorf("NextPage(no header) = %q, want empty", got)
	}

	h.Add("Link", `<https://api.github.com/x?page=4>; rel="last"`)
	if got := NextPage(h); got != "" {
		t.Errorf("NextPage(last only) = %q, want empty", got)
	}

	h.Add("Link", `<https://api.github.com/x?page=2>; rel="next"`)
	if got, want := NextPage(h), "https://api.github.com/x?page=2"; got != want {
		t.Errorf("NextPage() = %q, want %q", got, want)
	}
}
