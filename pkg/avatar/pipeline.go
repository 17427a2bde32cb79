package avatar

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/observability"
	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

// DefaultParallelism bounds concurrent avatar downloads.
const DefaultParallelism = 10

// Downloader fetches raw bytes from a URL. [integrations.Client] implements it.
//
// [integrations.Client]: github.com/kagami/github-social-graph/pkg/integrations.Client
type Downloader interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// Options configures a [Pipeline].
type Options struct {
	Parallelism int         // Concurrent downloads, DefaultParallelism if zero
	Logger      *log.Logger // Progress and failure logger (optional)
}

// Result lists usernames by outcome, each sorted.
type Result struct {
	Downloaded []string // Fetched, processed and written to the cache
	Skipped    []string // Already cached
	Failed     []string // Download, processing or write failed
}

// Pipeline downloads missing avatars into a [Cache].
type Pipeline struct {
	cache       *Cache
	dl          Downloader
	parallelism int
	logger      *log.Logger
}

// NewPipeline creates a pipeline writing to cache and downloading with dl.
func NewPipeline(cache *Cache, dl Downloader, opts Options) *Pipeline {
	if opts.Parallelism <= 0 {
		opts.Parallelism = DefaultParallelism
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Pipeline{cache: cache, dl: dl, parallelism: opts.Parallelism, logger: opts.Logger}
}

type workItem struct {
	url      string
	username string
}

// Run ensures a thumbnail is cached for every record in data that carries an
// avatar URL. Cached users are skipped without any request. When nothing is
// missing Run returns without touching the filesystem.
//
// A failure for one user is logged as a warning and reported in
// [Result.Failed]; it never stops the other downloads. Run returns an error
// only if the cache directory cannot be created or ctx is cancelled, and it
// always waits for every started download to finish.
func (p *Pipeline) Run(ctx context.Context, data socialgraph.Data) (*Result, error) {
	res := &Result{}
	hooks := observability.Avatars()

	var work []workItem
	for _, name := range data.Usernames() {
		rec := data[name]
		if rec == nil || rec.AvatarURL == "" {
			continue
		}
		if p.cache.Exists(name) {
			res.Skipped = append(res.Skipped, name)
			hooks.OnAvatarCached(ctx, name)
			continue
		}
		// URLs may come from a user-supplied JSON file.
		if err := ghserr.ValidateURL(rec.AvatarURL); err != nil {
			p.logger.Warn("skipping avatar", "user", name, "err", err)
			hooks.OnAvatarFailed(ctx, name, err)
			res.Failed = append(res.Failed, name)
			continue
		}
		work = append(work, workItem{url: rec.AvatarURL, username: name})
	}
	if len(work) == 0 {
		return res, nil
	}

	if err := p.cache.ensure(); err != nil {
		return res, err
	}

	p.logger.Infof("Downloading %d avatars", len(work))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(min(p.parallelism, len(work)))
	for _, item := range work {
		g.Go(func() error {
			start := time.Now()
			size, err := p.fetch(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Warn("avatar download failed", "user", item.username, "err", err)
				hooks.OnAvatarFailed(ctx, item.username, err)
				res.Failed = append(res.Failed, item.username)
				return nil
			}
			p.logger.Debug("avatar cached", "user", item.username, "bytes", size)
			hooks.OnAvatarStored(ctx, item.username, size, time.Since(start))
			res.Downloaded = append(res.Downloaded, item.username)
			return nil
		})
	}
	_ = g.Wait()

	slices.Sort(res.Downloaded)
	slices.Sort(res.Failed)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// fetch downloads, processes and stores one avatar, returning the size of
// the stored thumbnail.
func (p *Pipeline) fetch(ctx context.Context, item workItem) (int, error) {
	raw, err := p.dl.GetBytes(ctx, item.url)
	if err != nil {
		return 0, err
	}
	thumb, err := Process(raw)
	if err != nil {
		return 0, err
	}
	if err := p.cache.write(item.username, thumb); err != nil {
		return 0, err
	}
	return len(thumb), nil
}
