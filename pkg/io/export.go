package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

// WriteJSON encodes data as indented JSON and writes it to w.
// Keys are written in sorted order; the output can be re-read with
// [ReadJSON] without loss.
func WriteJSON(data socialgraph.Data, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
