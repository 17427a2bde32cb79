package render

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kagami/github-social-graph/pkg/avatar"
	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

// DPI is the resolution of rendered graphs. Avatar nodes are sized in
// inches as avatar.Size / DPI so they match the thumbnails pixel for pixel.
const DPI = 96

// Style holds the fixed palette of a rendered graph.
type Style struct {
	Background string  // Graph background color
	NodeColor  string  // Circle border color
	EdgeColor  string  // Arrow color
	FontColor  string  // Label color
	FontSize   float64 // Label size in points
}

// DefaultStyle returns the default palette.
func DefaultStyle() Style {
	return Style{
		Background: "#ffffff",
		NodeColor:  "#3182bd",
		EdgeColor:  "#9ecae1",
		FontColor:  "#08519c",
		FontSize:   10,
	}
}

// BuildOptions configures [Build].
type BuildOptions struct {
	// Avatars replaces text labels with cached avatar thumbnails.
	Avatars bool
	// AvatarPath maps a username to its thumbnail file.
	AvatarPath func(username string) string
	// Exists reports whether a thumbnail is present. Users without one keep
	// their text label. Nil means every path is assumed to exist.
	Exists func(username string) bool
	// Style overrides the palette; zero fields fall back to DefaultStyle.
	Style Style
}

// Node is one user in the rendered graph.
type Node struct {
	ID    string
	Image string // Thumbnail path, empty for a text node
}

// Edge points from a follower to the user being followed.
type Edge struct {
	From, To string
}

// Graph is a directed social graph ready to be written as DOT.
type Graph struct {
	Nodes []Node
	Edges []Edge
	Style Style
}

// Build converts data into a Graph. Every key and every username found in a
// followers or following list becomes a node. Each follower f of u yields
// f -> u and each followed user v of u yields u -> v; duplicate pairs
// coalesce. Nodes and edges are sorted so the result does not depend on map
// iteration order.
func Build(data socialgraph.Data, opts BuildOptions) *Graph {
	style := mergeStyle(opts.Style)
	nodes := make(map[string]bool)
	edges := make(map[Edge]bool)

	for name, rec := range data {
		nodes[name] = true
		if rec == nil {
			continue
		}
		for _, f := range rec.Followers {
			nodes[f] = true
			edges[Edge{From: f, To: name}] = true
		}
		for _, f := range rec.Following {
			nodes[f] = true
			edges[Edge{From: name, To: f}] = true
		}
	}

	g := &Graph{Style: style}
	for _, id := range sortedKeys(nodes) {
		n := Node{ID: id}
		if opts.Avatars && opts.AvatarPath != nil {
			rec := data[id]
			if rec != nil && rec.AvatarURL != "" && (opts.Exists == nil || opts.Exists(id)) {
				n.Image = opts.AvatarPath(id)
			}
		}
		g.Nodes = append(g.Nodes, n)
	}
	for e := range edges {
		g.Edges = append(g.Edges, e)
	}
	slices.SortFunc(g.Edges, func(a, b Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	return g
}

func mergeStyle(s Style) Style {
	d := DefaultStyle()
	if s.Background != "" {
		d.Background = s.Background
	}
	if s.NodeColor != "" {
		d.NodeColor = s.NodeColor
	}
	if s.EdgeColor != "" {
		d.EdgeColor = s.EdgeColor
	}
	if s.FontColor != "" {
		d.FontColor = s.FontColor
	}
	if s.FontSize > 0 {
		d.FontSize = s.FontSize
	}
	return d
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DOT returns the graph in Graphviz DOT syntax.
func (g *Graph) DOT() string {
	s := g.Style
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  dpi=%d;\n", DPI)
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", s.Background)
	buf.WriteString("  forcelabels=true;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, color=%q, margin=0, fontcolor=%q, fontsize=%s];\n",
		s.NodeColor, s.FontColor, fmtFloat(s.FontSize))
	fmt.Fprintf(&buf, "  edge [color=%q];\n", s.EdgeColor)
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n Node) []string {
	if n.Image == "" {
		return []string{fmt.Sprintf("label=%q", n.ID)}
	}
	// Graphviz substitutes the node name for an empty label, so a blank
	// one keeps the circle clear; the name goes outside as an xlabel.
	side := fmtFloat(float64(avatar.Size) / DPI)
	return []string{
		`label=" "`,
		fmt.Sprintf("xlabel=%q", n.ID),
		fmt.Sprintf("image=%q", n.Image),
		"width=" + side,
		"height=" + side,
		"fixedsize=true",
		fmt.Sprintf("tooltip=%q", n.ID),
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
