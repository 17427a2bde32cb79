// Package io reads and writes social graph data.
//
// # JSON Format
//
// Graph data is a JSON object keyed by username:
//
//	{
//	  "alice": {
//	    "followers": ["bob"],
//	    "following": [],
//	    "avatar_url": "https://avatars.githubusercontent.com/u/1"
//	  },
//	  "bob": {"followers": [], "following": ["alice"]}
//	}
//
// A missing "followers" attribute marks a user that was only seen in another
// user's lists. [WriteJSON] keeps that distinction, so data written with it
// can be read back with [ReadJSON] and rendered later without contacting
// GitHub again.
//
// # DOT Input
//
// [ReadDOT] returns Graphviz DOT text verbatim; it is handed to the renderer
// as is.
//
// # Formats and Streams
//
// [ResolveFormat] picks the format of an input or output: an explicit
// format wins over the file extension. The path "-" ([Stream]) selects
// stdin or stdout and has no extension, so it needs an explicit format.
//
// [CreateOutput] never leaves a half-written file behind: data goes to a
// temporary file next to the destination, which replaces it only on
// [Output.Commit].
package io
