package transcriber

import (
	"context"

	"github.com/ngocvu0811/study-flow/internal/transcript"
)

// Options controls a single transcription request.
type Options struct {
	// Language forces the spoken language; empty lets the provider detect it.
	Language string
	// ResponseFormat asks the provider for a specific payload shape
	// (verbose_json, vtt, srt). The parser accepts any of them.
	ResponseFormat string
}

// Transcriber converts a media file into a normalized transcription.
type Transcriber interface {
	TranscribeFile(ctx context.Context, path string, opts Options) (*transcript.Transcription, error)
}
