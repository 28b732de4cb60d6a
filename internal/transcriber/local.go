package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ngocvu0811/study-flow/internal/config"
	"github.com/ngocvu0811/study-flow/internal/logger"
	"github.com/ngocvu0811/study-flow/internal/transcript"
	"github.com/ngocvu0811/study-flow/pkg/executor"
)

type implLocal struct {
	cfg      config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewLocal creates a Transcriber that runs a whisper.cpp binary and parses
// the SRT file it writes.
func NewLocal(cfg config.WhisperConfig, tempDir string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implLocal{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}

func (l *implLocal) TranscribeFile(ctx context.Context, path string, opts Options) (*transcript.Transcription, error) {
	workDir, err := os.MkdirTemp(l.tempDir, "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("create whisper work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	outputPrefix := filepath.Join(workDir, "transcript")
	language := opts.Language
	if language == "" {
		language = "auto"
	}

	l.logger.Info(ctx, "Transcribing locally with %d threads: %s", l.cfg.Threads, path)

	// -osrt writes <prefix>.srt; -ml/-mc 0 lift length/context limits so long
	// recordings keep their natural segment boundaries.
	args := []string{
		"-m", l.cfg.ModelPath,
		"-f", path,
		"-osrt",
		"-l", language,
		"-t", strconv.Itoa(l.cfg.Threads),
		"-ml", "0",
		"-mc", "0",
		"--output-file", outputPrefix,
	}

	if _, err := l.executor.ExecuteInDir(ctx, workDir, l.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	raw, err := os.ReadFile(outputPrefix + ".srt")
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	tr := transcript.Parse(string(raw))
	tr.Language = opts.Language

	l.logger.Info(ctx, "Local transcription completed: %d segments", len(tr.Segments))
	return tr, nil
}
