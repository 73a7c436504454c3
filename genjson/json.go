// Package genjson wraps encoding/json with generic decoding and stack-carrying
// errors.
package genjson

import (
	"encoding/json"
	"io"

	"github.com/Invicton-Labs/go-stackerr"
)

func Unmarshal[T any](data []byte) (v T, err stackerr.Error) {
	if err := json.Unmarshal(data, &v); err != nil {
		return v, stackerr.Wrap(err)
	}
	return v, err
}

// Encode writes v to w as indented JSON followed by a newline.
func Encode(w io.Writer, v any) stackerr.Error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}
