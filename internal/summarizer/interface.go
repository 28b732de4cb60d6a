package summarizer

import "context"

// Options tunes a single summarization request. Zero values leave the model
// defaults in place.
type Options struct {
	MaxTokens   int32
	Temperature float32
}

// Summarizer turns a plain transcript into a markdown-formatted study
// summary. The only structural contract downstream code relies on is the
// markdown header syntax.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts Options) (string, error)
}
