// Package httputil provides HTTP utilities for the GitHub API client.
//
// # Overview
//
// This package provides infrastructure used by [integrations.Client]:
//
//   - [Backoff]: retry policy for transient failures
//   - [ParseLinks], [NextPage]: RFC 8288 Link header pagination
//
// # Retry
//
// [Backoff.Do] only repeats errors marked with [Transient]. The client marks
// network errors and 5xx responses; 4xx responses fail immediately. A
// Retry-After header on the failed response replaces the exponential delay:
//
//	err := httputil.NewBackoff(retries).Do(ctx, func() error {
//	    return fetch()
//	})
//
// The default is no retries at all: an upstream failure aborts the run.
//
// # Pagination
//
// GitHub list endpoints return at most 100 items per page and advertise the
// following page in the Link header:
//
//	Link: <https://api.github.com/users/alice/followers?page=2>; rel="next",
//	      <https://api.github.com/users/alice/followers?page=5>; rel="last"
//
// [NextPage] returns the rel="next" URL, or "" on the last page.
//
// [integrations.Client]: github.com/kagami/github-social-graph/pkg/integrations.Client
package httputil
