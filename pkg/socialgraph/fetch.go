package socialgraph

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kagami/github-social-graph/pkg/observability"
)

// API is the subset of the GitHub API the fetcher needs.
// [github.Client] implements it.
//
// [github.Client]: github.com/kagami/github-social-graph/pkg/integrations/github.Client
type API interface {
	OrgMembers(ctx context.Context, org string) ([]string, error)
	Followers(ctx context.Context, login string) ([]string, error)
	Following(ctx context.Context, login string) ([]string, error)
	AvatarURL(ctx context.Context, login string) (string, error)
}

// FetchOptions selects what to fetch.
type FetchOptions struct {
	Orgs    []string    // Organizations whose public members are fetched
	Users   []string    // Additional users to fetch
	Full    bool        // Keep references to users that were not fetched
	Avatars bool        // Resolve avatar URLs
	Logger  *log.Logger // Progress logger (optional)
}

// Fetcher assembles [Data] from the GitHub API. Requests are issued one at a
// time; any API error aborts the fetch and no partial data is returned.
type Fetcher struct {
	api API
}

// NewFetcher creates a Fetcher backed by api.
func NewFetcher(api API) *Fetcher {
	return &Fetcher{api: api}
}

// Fetch resolves organization members, fetches followers and following for
// every user, normalizes the result unless opts.Full is set, and finally
// attaches avatar URLs when opts.Avatars is set.
func (f *Fetcher) Fetch(ctx context.Context, opts FetchOptions) (Data, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	users := make(map[string]bool)
	for _, u := range opts.Users {
		users[u] = true
	}

	logger.Info("Fetching GitHub data, this may take a while")
	for _, org := range dedupe(opts.Orgs) {
		logger.Infof("Fetching %s's members", org)
		var members []string
		err := observe(ctx, observability.KindMembers, org, func() (n int, err error) {
			members, err = f.api.OrgMembers(ctx, org)
			return len(members), err
		})
		if err != nil {
			return nil, fmt.Errorf("fetch members of %s: %w", org, err)
		}
		logger.Debug("members", "org", org, "count", len(members))
		for _, m := range members {
			users[m] = true
		}
	}

	data := make(Data, len(users))
	for _, u := range sortedKeys(users) {
		logger.Infof("Fetching %s's followers and following", u)
		rec := data.GetOrCreate(u)

		followers, err := f.list(ctx, observability.KindFollowers, u, f.api.Followers)
		if err != nil {
			return nil, err
		}
		following, err := f.list(ctx, observability.KindFollowing, u, f.api.Following)
		if err != nil {
			return nil, err
		}
		rec.Followers = nonNil(followers)
		rec.Following = nonNil(following)
	}

	if !opts.Full {
		data = Normalize(data)
	}

	if opts.Avatars {
		targets := data.Usernames()
		if opts.Full {
			targets = append(targets, data.Referenced()...)
		}
		logger.Infof("Fetching avatar URLs for %d users", len(targets))
		for _, u := range targets {
			rec := data.GetOrCreate(u)
			if rec.AvatarURL != "" {
				continue
			}
			var url string
			err := observe(ctx, observability.KindAvatarURL, u, func() (n int, err error) {
				url, err = f.api.AvatarURL(ctx, u)
				if url != "" {
					n = 1
				}
				return n, err
			})
			if err != nil {
				return nil, fmt.Errorf("fetch avatar URL of %s: %w", u, err)
			}
			rec.AvatarURL = url
		}
	}

	logger.Infof("Fetched %d users", len(data))
	return data, nil
}

func (f *Fetcher) list(ctx context.Context, kind, user string, call func(context.Context, string) ([]string, error)) ([]string, error) {
	var out []string
	err := observe(ctx, kind, user, func() (n int, err error) {
		out, err = call(ctx, user)
		return len(out), err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s of %s: %w", kind, user, err)
	}
	return out, nil
}

// observe runs one API call between fetch hook events. A cancelled context
// short-circuits before the call is made.
func observe(ctx context.Context, kind, name string, call func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hooks := observability.Fetch()
	hooks.OnFetchStart(ctx, kind, name)
	start := time.Now()
	n, err := call()
	hooks.OnFetchComplete(ctx, kind, name, n, time.Since(start), err)
	return err
}

func dedupe(names []string) []string {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
