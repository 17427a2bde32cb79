package io

import (
	"encoding/json"
	"fmt"
	"io"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

// ReadJSON decodes social graph data from r.
//
// The input must be a JSON object keyed by username:
//
//	{
//	  "alice": {"followers": ["bob"], "following": [], "avatar_url": "https://..."},
//	  "bob":   {"followers": [], "following": ["alice"]}
//	}
//
// Every attribute is optional. An absent "followers" list marks a user that
// was never fetched; null records decode as empty ones. List order is
// preserved. ReadJSON does not close r.
func ReadJSON(r io.Reader) (socialgraph.Data, error) {
	var data socialgraph.Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, ghserr.Wrap(ghserr.ErrCodeInvalidInput, err, "decode graph JSON")
	}
	if data == nil {
		return nil, ghserr.New(ghserr.ErrCodeInvalidInput, "graph JSON must be an object")
	}
	for name, rec := range data {
		if name == "" {
			return nil, ghserr.New(ghserr.ErrCodeInvalidInput, "graph JSON contains an empty username")
		}
		if rec == nil {
			data[name] = &socialgraph.Record{}
		}
	}
	return data, nil
}

// ReadDOT reads Graphviz DOT text from r. The text is returned verbatim and
// only parsed when rendered.
func ReadDOT(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read DOT: %w", err)
	}
	return b, nil
}
