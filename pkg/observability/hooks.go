// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about GitHub fetches, HTTP calls, and avatar downloads.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main (or the CLI), never by libraries, so library
// packages stay free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    observability.SetAvatarHooks(&myAvatarHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Fetch().OnFetchStart(ctx, observability.KindFollowers, "alice")
//	// ... do fetching ...
//	observability.Fetch().OnFetchComplete(ctx, observability.KindFollowers, "alice", n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Fetch kinds reported to [FetchHooks].
const (
	KindMembers   = "members"
	KindFollowers = "followers"
	KindFollowing = "following"
	KindAvatarURL = "avatar_url"
)

// =============================================================================
// Fetch Hooks
// =============================================================================

// FetchHooks receives events from the GitHub data fetcher.
type FetchHooks interface {
	OnFetchStart(ctx context.Context, kind, name string)
	OnFetchComplete(ctx context.Context, kind, name string, count int, duration time.Duration, err error)
}

// =============================================================================
// Avatar Hooks
// =============================================================================

// AvatarHooks receives events from the avatar pipeline.
type AvatarHooks interface {
	// OnAvatarCached records a username whose thumbnail was already on disk.
	OnAvatarCached(ctx context.Context, username string)

	// OnAvatarStored records a thumbnail written to the cache.
	OnAvatarStored(ctx context.Context, username string, size int, duration time.Duration)

	// OnAvatarFailed records a download or processing failure.
	OnAvatarFailed(ctx context.Context, username string, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFetchHooks is a no-op implementation of FetchHooks.
type NoopFetchHooks struct{}

func (NoopFetchHooks) OnFetchStart(context.Context, string, string) {}
func (NoopFetchHooks) OnFetchComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopAvatarHooks is a no-op implementation of AvatarHooks.
type NoopAvatarHooks struct{}

func (NoopAvatarHooks) OnAvatarCached(context.Context, string)                     {}
func (NoopAvatarHooks) OnAvatarStored(context.Context, string, int, time.Duration) {}
func (NoopAvatarHooks) OnAvatarFailed(context.Context, string, error)              {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	fetchHooks  FetchHooks  = NoopFetchHooks{}
	avatarHooks AvatarHooks = NoopAvatarHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetFetchHooks registers custom fetch hooks.
// This should be called once at application startup before any fetching.
func SetFetchHooks(h FetchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fetchHooks = h
	}
}

// SetAvatarHooks registers custom avatar hooks.
// Avatar hooks are called from several goroutines at once; implementations
// must be safe for concurrent use.
func SetAvatarHooks(h AvatarHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		avatarHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Fetch returns the registered fetch hooks.
func Fetch() FetchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fetchHooks
}

// Avatars returns the registered avatar hooks.
func Avatars() AvatarHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return avatarHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	fetchHooks = NoopFetchHooks{}
	avatarHooks = NoopAvatarHooks{}
	httpHooks = NoopHTTPHooks{}
}
