package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ngocvu0811/study-flow/internal/config"
	"github.com/ngocvu0811/study-flow/internal/logger"
	"github.com/ngocvu0811/study-flow/internal/transcript"
)

type implAPI struct {
	baseURL string
	apiKey  string
	model   string
	format  string
	client  *http.Client
	logger  logger.Logger
}

// NewAPI creates a Transcriber backed by an OpenAI-compatible
// /audio/transcriptions endpoint.
func NewAPI(cfg config.APIConfig, log logger.Logger) Transcriber {
	return &implAPI{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		format:  cfg.ResponseFormat,
		client:  &http.Client{Timeout: 10 * time.Minute},
		logger:  log,
	}
}

// TranscribeFile uploads the media as multipart form data and parses whatever
// shape the provider answers with.
func (a *implAPI) TranscribeFile(ctx context.Context, path string, opts Options) (*transcript.Transcription, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read media file: %w", err)
	}

	format := opts.ResponseFormat
	if format == "" {
		format = a.format
	}

	body, contentType, err := buildForm(a.model, filepath.Base(path), audio, opts.Language, format)
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "Transcribing via API: %s (%d bytes, format=%s)", filepath.Base(path), len(audio), format)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/audio/transcriptions", body)
	if err != nil {
		return nil, fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("transcription API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	tr := transcript.Parse(string(raw))
	tr.Language = opts.Language

	a.logger.Info(ctx, "Transcription received: %d segments, %d chars", len(tr.Segments), len(tr.FullText))
	return tr, nil
}

func buildForm(model, filename string, audio []byte, language, format string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("model", model); err != nil {
		return nil, "", fmt.Errorf("write model field: %w", err)
	}
	if language != "" {
		if err := w.WriteField("language", language); err != nil {
			return nil, "", fmt.Errorf("write language field: %w", err)
		}
	}
	if format != "" {
		if err := w.WriteField("response_format", format); err != nil {
			return nil, "", fmt.Errorf("write response_format field: %w", err)
		}
	}

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("create file field: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, "", fmt.Errorf("write audio data: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
