package llm

import "context"

// Request holds the parameters for a single generation call.
type Request struct {
	System      string
	User        string
	Temperature *float64 // nil uses the configured default
	MaxTokens   *int     // nil uses the configured default
}

// Response holds the result of a generation call. Text is consumed verbatim
// by the blueprint assembler and never interpreted further.
type Response struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to the external generative-content service.
type Client interface {
	// Generate sends one prompt and returns the raw text response.
	Generate(ctx context.Context, req Request) (*Response, error)
}
