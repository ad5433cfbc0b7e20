// Package inference contains the client for the external language-model
// completion service. Each call is stateless: the user message is the whole
// prompt, and one response text comes back.
package inference

import (
	"context"
	"errors"
)

// ErrCompletion is returned (wrapped) for any failure of a completion call:
// transport errors, non-2xx responses, and unusable response bodies.
// Callers match it with errors.Is.
var ErrCompletion = errors.New("completion request failed")

// Gateway is the interface the chat service depends on; tests substitute stubs.
type Gateway interface {
	Complete(ctx context.Context, message string) (string, error)
}
