package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ngocvu0811/study-flow/internal/summarizer"
	"github.com/ngocvu0811/study-flow/internal/transcriber"
)

// Process runs one media file through the whole pipeline: audio extraction,
// transcription, summarization with quote alignment, output writing, and
// archival of the original.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()
	jobID := uuid.NewString()[:8]
	name := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))

	p.logger.Info(ctx, "[%s] Processing: %s", jobID, mediaPath)

	workDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "job-"+jobID+"-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	// Step 1: get a transcribable audio file.
	audioPath := mediaPath
	if !isAudioFile(mediaPath) {
		audioPath, err = p.extractAudio(ctx, mediaPath, workDir)
		if err != nil {
			return fmt.Errorf("extract audio: %w", err)
		}
	}

	// Step 2: transcribe.
	tr, err := p.engine.TranscribeFile(ctx, audioPath, transcriber.Options{
		Language:       p.cfg.Transcriber.Language,
		ResponseFormat: p.cfg.Transcriber.API.ResponseFormat,
	})
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	if tr.FullText == "" {
		p.logger.Warn(ctx, "[%s] Empty transcript, skipping summary", jobID)
		return nil
	}

	// Step 3: summarize and align quotes.
	annotated, err := p.engine.GenerateSummaryWithQuotes(ctx, tr, summarizer.Options{
		MaxTokens:   int32(p.cfg.Summarizer.MaxTokens),
		Temperature: float32(p.cfg.Summarizer.Temperature),
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 4: write study notes.
	if err := p.writeOutputs(ctx, name, annotated); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	// Step 5: archive the original so it is not picked up again.
	if err := p.archive(ctx, mediaPath); err != nil {
		p.logger.Warn(ctx, "[%s] Failed to archive original: %v", jobID, err)
	}

	p.logger.Info(ctx, "[%s] Done in %s: %d sections", jobID, time.Since(startTime).Round(time.Millisecond), len(annotated.Sections))
	return nil
}
