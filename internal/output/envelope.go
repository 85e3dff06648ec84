// Package output defines the JSON envelope every command prints and
// the payload schemas that go inside it. Editor integrations parse
// this output, so field names are part of the tool's contract.
package output

import (
	"encoding/json"
	"io"
)

// Response is the uniform command envelope. Exactly one of Data and
// ErrorReason is populated, matching the Success flag.
type Response[T any] struct {
	Command     string `json:"command"`
	Cwd         string `json:"cwd"`
	Success     bool   `json:"success"`
	Data        *T     `json:"data,omitempty"`
	ErrorReason string `json:"errorReason,omitempty"`
}

// Ok builds a successful envelope around a payload.
func Ok[T any](command, cwd string, data T) Response[T] {
	return Response[T]{
		Command: command,
		Cwd:     cwd,
		Success: true,
		Data:    &data,
	}
}

// Fail builds a failed envelope carrying the error's message.
func Fail[T any](command, cwd string, err error) Response[T] {
	return Response[T]{
		Command:     command,
		Cwd:         cwd,
		ErrorReason: err.Error(),
	}
}

// Write encodes the envelope as a single JSON document followed by a
// newline.
func (r Response[T]) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(r)
}
