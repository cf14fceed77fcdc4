// Package llm abstracts the text-completion service used for graph and PRD
// generation. The service is unreliable by contract: callers must treat any
// error as "the AI path is unavailable".
package llm

import "context"

// Completer turns a prompt into generated text.
type Completer interface {
	// Complete sends the prompt and returns the raw model output.
	Complete(ctx context.Context, prompt string) (string, error)
	// Model reports the model identifier requests are sent with.
	Model() string
}

// CompleterFunc adapts a function to the Completer interface. Used in tests.
type CompleterFunc struct {
	Fn    func(ctx context.Context, prompt string) (string, error)
	Label string
}

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f.Fn(ctx, prompt)
}

func (f CompleterFunc) Model() string { return f.Label }
