// ABOUTME: Completer is the injected language-model capability for the generator
// ABOUTME: One method, context-bounded, so tests can supply canned implementations
package llm

import "context"

// Completer produces free-text output for a prompt. The context carries
// the caller's timeout/cancellation; implementations must honor it.
// A nil Completer is the recognized "dependency unavailable" precondition.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
