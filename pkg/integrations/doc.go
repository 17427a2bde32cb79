// Package integrations provides the shared HTTP client used to talk to GitHub.
//
// # Overview
//
// [Client] wraps net/http with the behavior every caller needs:
//
//   - Default headers (Accept, User-Agent, Authorization)
//   - Optional client-side rate limiting ([WithRateLimit])
//   - Optional retries of transient failures ([WithRetries])
//   - Mapping of HTTP status codes to sentinel errors
//   - Link header pagination ([Client.GetPage])
//
// The GitHub REST client lives in the [github] subpackage. The avatar pipeline
// uses a second, unauthenticated Client for image downloads so that API
// credentials are never sent to the avatar CDN.
//
// # Errors
//
// Status codes map to sentinels usable with errors.Is:
//
//   - 404: [ErrNotFound]
//   - 401: [ErrUnauthorized]
//   - 429, or 403 with an exhausted quota: [ErrRateLimited]
//   - 5xx and transport failures: [ErrNetwork] (retryable)
//
// [github]: github.com/kagami/github-social-graph/pkg/integrations/github
package integrations
