// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// This package fetches the data needed to build a social graph from
// https://api.github.com:
//
//   - [Client.OrgMembers]: public members of an organization
//   - [Client.Followers]: users following a user
//   - [Client.Following]: users a user follows
//   - [Client.AvatarURL]: a user's avatar image URL
//
// List endpoints are paginated with per_page=100; every page is followed
// through the Link header, so results are complete.
//
// # Usage
//
//	client := github.NewClient(github.Config{
//	    Credentials: github.Credentials{Token: os.Getenv("GITHUB_TOKEN")},
//	})
//
//	members, err := client.OrgMembers(ctx, "vim-jp")
//	followers, err := client.Followers(ctx, "Shougo")
//
// # Authentication
//
// Credentials are optional. Without them the API allows 60 requests per
// hour, which is enough for a handful of users only. A token is sent as a
// Bearer header; a username/password pair uses basic authentication.
//
// # Errors
//
// Failures are returned as [errors.Error] values whose code tells a missing
// user (NOT_FOUND) from bad credentials (UNAUTHORIZED), an exhausted quota
// (RATE_LIMITED) or a transport problem (NETWORK_ERROR). Nothing is retried
// unless [Config.Retries] is set.
//
// [errors.Error]: github.com/kagami/github-social-graph/pkg/errors.Error
package github
