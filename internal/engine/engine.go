// Package engine sequences the transcription and summarization collaborators
// with the alignment core. It owns no state between calls: each invocation is
// an independent pipeline from media to annotated summary, so callers may run
// many of them concurrently.
package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/ngocvu0811/study-flow/internal/align"
	"github.com/ngocvu0811/study-flow/internal/logger"
	"github.com/ngocvu0811/study-flow/internal/summarizer"
	"github.com/ngocvu0811/study-flow/internal/transcriber"
	"github.com/ngocvu0811/study-flow/internal/transcript"
)

type Engine struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	tempDir     string
	client      *http.Client
}

// New wires the two collaborators into an Engine. tempDir receives downloads
// from TranscribeURL.
func New(t transcriber.Transcriber, s summarizer.Summarizer, log logger.Logger, tempDir string) *Engine {
	return &Engine{
		transcriber: t,
		summarizer:  s,
		logger:      log,
		tempDir:     tempDir,
		client:      http.DefaultClient,
	}
}

// TranscribeFile obtains a normalized transcription for a local media file.
// Collaborator failures propagate to the caller unretried.
func (e *Engine) TranscribeFile(ctx context.Context, mediaPath string, opts transcriber.Options) (*transcript.Transcription, error) {
	return e.transcriber.TranscribeFile(ctx, mediaPath, opts)
}

// TranscribeURL downloads the media to a temp file and transcribes it.
func (e *Engine) TranscribeURL(ctx context.Context, rawURL string, opts transcriber.Options) (*transcript.Transcription, error) {
	mediaPath, err := e.download(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer os.Remove(mediaPath)

	return e.transcriber.TranscribeFile(ctx, mediaPath, opts)
}

// GenerateSummaryWithQuotes summarizes a finished transcription and anchors
// the summary's sections with time-coded quotes from the transcript. A
// summary with no extractable concepts still succeeds; its sections simply
// carry no quotes.
func (e *Engine) GenerateSummaryWithQuotes(ctx context.Context, tr *transcript.Transcription, opts summarizer.Options) (*align.AnnotatedSummary, error) {
	summary, err := e.summarizer.Summarize(ctx, tr.FullText, opts)
	if err != nil {
		return nil, err
	}

	annotated := align.Annotate(summary, tr)
	e.logger.Info(ctx, "Annotated summary: %d sections, %d quotes", len(annotated.Sections), countQuotes(annotated.Sections))
	return annotated, nil
}

func (e *Engine) download(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse media URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("download media: unexpected status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp(e.tempDir, "download-*"+path.Ext(parsed.Path))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write downloaded media: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close downloaded media: %w", err)
	}

	e.logger.Debug(ctx, "Downloaded %s -> %s", rawURL, f.Name())
	return f.Name(), nil
}

func countQuotes(sections []align.Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Quotes)
	}
	return n
}
