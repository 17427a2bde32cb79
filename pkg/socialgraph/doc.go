// Package socialgraph models the follower graph of a set of GitHub users.
//
// # Data
//
// [Data] maps a username to a [Record] holding its followers, the users it
// follows and its avatar URL. Keys are users that were fetched (or loaded
// from a JSON file); the lists may reference users that are not keys.
// Presence of the followers list is the "fetched" marker:
//
//	{
//	  "alice": {"followers": ["bob"], "following": []},
//	  "bob":   {"followers": [], "following": ["alice"]}
//	}
//
// # Fetching
//
// A [Fetcher] resolves organization members, then fetches followers and
// following of each user through an [API]. Unless a full graph is requested
// the result is passed through [Normalize].
//
// # Normalization
//
// [Normalize] drops every list entry that does not point to a fetched key,
// so the rendered graph only contains users whose relationships are known.
// It returns a copy and never adds or removes keys.
package socialgraph
