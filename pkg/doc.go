// Package pkg provides the libraries behind github-social-graph.
//
// # Overview
//
// github-social-graph fetches follower relationships of GitHub users and
// organization members and draws them as a directed graph. The pkg directory
// is organized into these areas:
//
//  1. [socialgraph] - Graph data model, fetcher and normalizer
//  2. [integrations] - HTTP client plumbing and the GitHub REST client
//  3. [avatar] - Avatar download pipeline, circular thumbnails and cache
//  4. [render] - DOT graph construction and Graphviz rendering
//  5. [io] - JSON and DOT import/export
//
// # Architecture
//
// The typical data flow:
//
//	GitHub API (or a JSON/DOT file)
//	         ↓
//	    [socialgraph] Fetcher, then Normalize
//	         ↓
//	    [avatar] Pipeline (circular PNG thumbnails on disk)
//	         ↓
//	    [render] Build + Render
//	         ↓
//	    PNG/SVG/PDF/DOT/JSON output
//
// # Quick Start
//
//	client := github.NewClient(github.Config{
//	    Credentials: github.Credentials{Token: os.Getenv("GITHUB_TOKEN")},
//	})
//	data, err := socialgraph.NewFetcher(client).Fetch(ctx, socialgraph.FetchOptions{
//	    Orgs: []string{"vim-jp"},
//	})
//	if err != nil {
//	    return err
//	}
//	g := render.Build(data, render.BuildOptions{Style: render.DefaultStyle()})
//	return render.Render(ctx, []byte(g.DOT()), "svg", w)
//
// # Supporting packages
//
//   - [errors] - coded errors and input validation
//   - [httputil] - retries and Link header pagination
//   - [observability] - hooks for fetch, avatar and HTTP events
//   - [buildinfo] - version information set at build time
//
// [socialgraph]: github.com/kagami/github-social-graph/pkg/socialgraph
// [integrations]: github.com/kagami/github-social-graph/pkg/integrations
// [avatar]: github.com/kagami/github-social-graph/pkg/avatar
// [render]: github.com/kagami/github-social-graph/pkg/render
// [io]: github.com/kagami/github-social-graph/pkg/io
// [errors]: github.com/kagami/github-social-graph/pkg/errors
// [httputil]: github.com/kagami/github-social-graph/pkg/httputil
// [observability]: github.com/kagami/github-social-graph/pkg/observability
// [buildinfo]: github.com/kagami/github-social-graph/pkg/buildinfo
package pkg
