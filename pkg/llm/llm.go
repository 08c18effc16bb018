package llm

import "context"

// Client is a minimal abstraction over a text-completion provider.
// One prompt in, raw model text out; no retries, no streaming. It
// intentionally hides concrete providers to preserve dependency direction.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
