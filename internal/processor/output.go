package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ngocvu0811/study-flow/internal/align"
	"github.com/ngocvu0811/study-flow/internal/transcript"
)

// writeOutputs renders the annotated summary into the output folder as
// markdown and as a styled docx. The markdown file is the primary artifact;
// a docx failure is logged but does not fail the job.
func (p *implProcessor) writeOutputs(ctx context.Context, name string, annotated *align.AnnotatedSummary) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(name, annotated)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	p.logger.Info(ctx, "Wrote study notes: %s", mdPath)

	docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	if err := writeDocx(name, annotated, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
	} else {
		p.logger.Info(ctx, "Wrote study notes: %s", docxPath)
	}

	return nil
}

// renderMarkdown lays the annotated summary out as a study-notes document:
// each section followed by its time-coded quotes, then the full transcript as
// an appendix so nothing from the recording is lost.
func renderMarkdown(title string, a *align.AnnotatedSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	if n := len(a.Segments); n > 0 {
		fmt.Fprintf(&b, "_Duration: %s_\n\n", transcript.FormatDuration(0, a.Segments[n-1].End))
	}

	for _, sec := range a.Sections {
		if sec.Title != "" {
			fmt.Fprintf(&b, "## %s\n\n", sec.Title)
		}
		b.WriteString(sec.Content)
		b.WriteString("\n")
		for _, q := range sec.Quotes {
			fmt.Fprintf(&b, "\n> [%s] %s\n", q.Formatted, q.Text)
		}
		b.WriteString("\n")
	}

	if len(a.Segments) > 0 {
		b.WriteString("---\n\n## Full transcript\n\n")
		for _, s := range a.Segments {
			fmt.Fprintf(&b, "[%s] %s\n", transcript.FormatClock(s.Start), s.Text)
		}
	} else if a.FullTranscript != "" {
		b.WriteString("---\n\n## Full transcript\n\n")
		b.WriteString(a.FullTranscript)
		b.WriteString("\n")
	}

	return b.String()
}
