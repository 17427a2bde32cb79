package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/kagami/github-social-graph/pkg/buildinfo"
	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// perPage is the largest page size GitHub list endpoints accept.
const perPage = 100

// Credentials authenticate API requests. Token takes precedence over
// Username/Password. All fields empty means anonymous access.
type Credentials struct {
	Username string
	Password string
	Token    string
}

// Config configures a [Client].
type Config struct {
	BaseURL           string        // API root, DefaultBaseURL if empty
	Credentials       Credentials   // Optional authentication
	Timeout           time.Duration // Per-request timeout, integrations.DefaultTimeout if zero
	Retries           int           // Retries for transient failures, none if zero
	RequestsPerSecond float64       // Client-side rate limit, unlimited if zero
}

// Client provides access to the GitHub API for organization membership and
// follower relationships. It handles pagination, authentication and status
// mapping; calls are sequential and never cached.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client from cfg.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	headers := map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
		"User-Agent":           buildinfo.UserAgent(),
	}
	if auth := authorization(cfg.Credentials); auth != "" {
		headers["Authorization"] = auth
	}

	return &Client{
		Client: integrations.NewClient(headers,
			integrations.WithTimeout(cfg.Timeout),
			integrations.WithRetries(cfg.Retries),
			integrations.WithRateLimit(cfg.RequestsPerSecond),
		),
		baseURL: baseURL,
	}
}

func authorization(c Credentials) string {
	switch {
	case c.Token != "":
		return "Bearer " + c.Token
	case c.Username != "" && c.Password != "":
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
	default:
		return ""
	}
}

// OrgMembers returns the logins of an organization's public members.
func (c *Client) OrgMembers(ctx context.Context, org string) ([]string, error) {
	if err := ghserr.ValidateUsername(org); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/orgs/%s/public_members?per_page=%d", c.baseURL, integrations.URLEncode(org), perPage)
	logins, err := c.listLogins(ctx, url)
	if err != nil {
		return nil, wrapErr(err, "public members of %s", org)
	}
	return logins, nil
}

// Followers returns the logins following login, in API order.
func (c *Client) Followers(ctx context.Context, login string) ([]string, error) {
	if err := ghserr.ValidateUsername(login); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/users/%s/followers?per_page=%d", c.baseURL, integrations.URLEncode(login), perPage)
	logins, err := c.listLogins(ctx, url)
	if err != nil {
		return nil, wrapErr(err, "followers of %s", login)
	}
	return logins, nil
}

// Following returns the logins login follows, in API order.
func (c *Client) Following(ctx context.Context, login string) ([]string, error) {
	if err := ghserr.ValidateUsername(login); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/users/%s/following?per_page=%d", c.baseURL, integrations.URLEncode(login), perPage)
	logins, err := c.listLogins(ctx, url)
	if err != nil {
		return nil, wrapErr(err, "following of %s", login)
	}
	return logins, nil
}

// FetchUser retrieves a user's public profile.
func (c *Client) FetchUser(ctx context.Context, login string) (*User, error) {
	if err := ghserr.ValidateUsername(login); err != nil {
		return nil, err
	}
	var u User
	url := fmt.Sprintf("%s/users/%s", c.baseURL, integrations.URLEncode(login))
	if err := c.Get(ctx, url, &u); err != nil {
		return nil, wrapErr(err, "user %s", login)
	}
	return &u, nil
}

// AvatarURL returns the avatar image URL of a user.
func (c *Client) AvatarURL(ctx context.Context, login string) (string, error) {
	u, err := c.FetchUser(ctx, login)
	if err != nil {
		return "", err
	}
	return u.AvatarURL, nil
}

// listLogins walks every page of a user-list endpoint.
func (c *Client) listLogins(ctx context.Context, url string) ([]string, error) {
	logins := []string{}
	for url != "" {
		var page []userResponse
		next, err := c.GetPage(ctx, url, &page)
		if err != nil {
			return nil, err
		}
		for _, u := range page {
			logins = append(logins, u.Login)
		}
		url = next
	}
	return logins, nil
}

// wrapErr attaches the request subject and an error code to an API failure.
func wrapErr(err error, format string, args ...any) error {
	var code ghserr.Code
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, integrations.ErrNotFound):
		code = ghserr.ErrCodeNotFound
	case errors.Is(err, integrations.ErrUnauthorized):
		code = ghserr.ErrCodeUnauthorized
	case errors.Is(err, integrations.ErrRateLimited):
		code = ghserr.ErrCodeRateLimited
	default:
		code = ghserr.ErrCodeNetwork
	}
	return ghserr.Wrap(code, err, "github: "+format, args...)
}
