// Package render turns social graph data into Graphviz graphs and images.
//
// # Building
//
// [Build] creates a [Graph] with one circular node per user and one arrow
// per follow relationship, pointing from the follower to the followed user.
// With avatars enabled, nodes whose thumbnail is cached show the image
// inside the circle and the username as an external label:
//
//	g := render.Build(data, render.BuildOptions{
//	    Avatars:    true,
//	    AvatarPath: cache.Path,
//	    Exists:     cache.Exists,
//	})
//	dot := g.DOT()
//
// # Rendering
//
// [Render] lays the DOT text out with the dot engine (via go-graphviz, no
// system Graphviz needed). SVG and xdot come straight from Graphviz; the
// SVG embeds avatar images as data URIs. PNG, JPEG and PDF are converted
// from that SVG with the external rsvg-convert tool:
//
//	err := render.Render(ctx, []byte(dot), "png", w)
//
// DOT text read from a file is rendered as is.
package render
