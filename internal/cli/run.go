package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kagami/github-social-graph/pkg/avatar"
	"github.com/kagami/github-social-graph/pkg/buildinfo"
	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/integrations"
	"github.com/kagami/github-social-graph/pkg/integrations/github"
	gio "github.com/kagami/github-social-graph/pkg/io"
	"github.com/kagami/github-social-graph/pkg/render"
	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

// graphSource is what the first stage produces: structured data, or DOT
// text that is rendered as is.
type graphSource struct {
	data socialgraph.Data
	dot  []byte
}

// run executes the whole command: load or fetch, normalize, then write.
func (c *CLI) run(ctx context.Context, opts *options) error {
	logger := loggerFromContext(ctx)

	if err := opts.validate(); err != nil {
		return err
	}
	logger.Debug("options", "resolved", opts.String())

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		return err
	}

	src, err := c.load(ctx, opts, cfg)
	if err != nil {
		return err
	}
	if src.data != nil && !opts.full {
		src.data = socialgraph.Normalize(src.data)
	}

	return c.write(ctx, opts, cfg, src)
}

// load reads the input file, or fetches from GitHub when there is none.
func (c *CLI) load(ctx context.Context, opts *options, cfg *Config) (*graphSource, error) {
	logger := loggerFromContext(ctx)

	if !opts.fetchTargets() {
		if len(opts.orgs) > 0 || len(opts.users) > 0 {
			printWarning("--orgs and --users are ignored when reading from --input")
		}
		r, err := gio.OpenInput(opts.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer r.Close()

		if opts.inputFormat == gio.FormatDOT {
			dot, err := gio.ReadDOT(r)
			if err != nil {
				return nil, err
			}
			return &graphSource{dot: dot}, nil
		}
		data, err := gio.ReadJSON(r)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded users", "users", len(data), "from", opts.input)
		return &graphSource{data: data}, nil
	}

	creds, err := opts.credentials(cfg)
	if err != nil {
		return nil, err
	}
	if creds.Token == "" && creds.Password == "" {
		printInfo("No GitHub credentials given, anonymous requests are limited to 60 per hour")
	}

	client := github.NewClient(github.Config{
		BaseURL:           cfg.APIURL,
		Credentials:       creds,
		Timeout:           cfg.Timeout,
		Retries:           cfg.Retries,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})

	st := startStage(ctx, "fetch")
	data, err := socialgraph.NewFetcher(client).Fetch(ctx, socialgraph.FetchOptions{
		Orgs:    opts.orgs,
		Users:   opts.users,
		Full:    opts.full,
		Avatars: !opts.noAvatars,
		Logger:  logger,
	})
	if err != nil {
		st.failed(err)
		var rl *ghserr.RateLimitedError
		if errors.As(err, &rl) && creds.Token == "" && creds.Password == "" {
			printInfo("Pass --token or set GITHUB_TOKEN to raise the rate limit")
		}
		return nil, err
	}
	st.done("fetched users", "users", len(data))
	return &graphSource{data: data}, nil
}

// write produces the output in the requested format. An existing output
// file is only replaced once the new content is complete.
func (c *CLI) write(ctx context.Context, opts *options, cfg *Config, src *graphSource) error {
	logger := loggerFromContext(ctx)
	cache := avatar.NewCache(cfg.CacheDir)
	buildOpts := render.BuildOptions{
		Avatars:    !opts.noAvatars,
		AvatarPath: cache.Path,
		Exists:     cache.Exists,
		Style:      render.Style{Background: cfg.Background},
	}

	// Avatars must be on disk before the graph is built so that nodes
	// whose download failed fall back to a text label.
	rendered := opts.outputFormat != gio.FormatJSON && opts.outputFormat != gio.FormatDOT
	if rendered && src.dot == nil && !opts.noAvatars {
		if err := c.fetchAvatars(ctx, cfg, cache, src.data); err != nil {
			return err
		}
	}

	var graph *render.Graph
	if src.data != nil && opts.outputFormat != gio.FormatJSON {
		graph = render.Build(src.data, buildOpts)
		logger.Debug("built graph", "nodes", len(graph.Nodes), "edges", len(graph.Edges))
	}

	out, err := gio.CreateOutput(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Discard()

	switch {
	case opts.outputFormat == gio.FormatJSON:
		err = gio.WriteJSON(src.data, out)
	case opts.outputFormat == gio.FormatDOT && src.dot != nil:
		_, err = out.Write(src.dot)
	case opts.outputFormat == gio.FormatDOT:
		_, err = io.WriteString(out, graph.DOT())
	default:
		dot := src.dot
		if dot == nil {
			dot = []byte(graph.DOT())
		}
		st := startStage(ctx, "render")
		err = withSpinner(ctx, "Rendering "+strings.ToUpper(opts.outputFormat), func() error {
			return render.Render(ctx, dot, opts.outputFormat, out)
		})
		if err != nil {
			st.failed(err)
		} else {
			st.done("rendered graph", "format", opts.outputFormat)
		}
	}
	if err != nil {
		return err
	}
	if err := out.Commit(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !gio.IsStream(opts.output) {
		printSuccess("Wrote %s", opts.outputFormat)
		printFile(opts.output)
		if graph != nil {
			printStats(len(src.data), len(graph.Nodes), len(graph.Edges))
		}
	}
	return nil
}

// fetchAvatars downloads missing avatar thumbnails. Individual failures are
// reported but do not fail the run.
func (c *CLI) fetchAvatars(ctx context.Context, cfg *Config, cache *avatar.Cache, data socialgraph.Data) error {
	// Avatar URLs point at a CDN; GitHub credentials are not sent there.
	dl := integrations.NewClient(
		map[string]string{"User-Agent": buildinfo.UserAgent()},
		integrations.WithTimeout(cfg.Timeout),
		integrations.WithRetries(cfg.Retries),
	)
	st := startStage(ctx, "avatars")
	res, err := avatar.NewPipeline(cache, dl, avatar.Options{
		Parallelism: cfg.Parallelism,
		Logger:      loggerFromContext(ctx),
	}).Run(ctx, data)
	if err != nil {
		st.failed(err)
		return err
	}
	st.done("avatars ready", "downloaded", len(res.Downloaded), "cached", len(res.Skipped), "failed", len(res.Failed))
	if n := len(res.Failed); n > 0 {
		printWarning("%d avatars could not be downloaded, showing names instead", n)
		printDetail("%s", strings.Join(res.Failed, ", "))
	}
	return nil
}
