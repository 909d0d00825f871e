package llm

import "context"

// Generator is the text-generation capability: prompt in, text out.
// Implementations may fail; the error is propagated unchanged so callers
// can wrap it with their own stage context.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts an ordinary function to the Generator interface, mirroring
// http.HandlerFunc. This is the cheapest way for a caller to hand the
// pipeline a custom generation capability.
type Func func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
