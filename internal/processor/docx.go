package processor

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/ngocvu0811/study-flow/internal/align"
	"github.com/ngocvu0811/study-flow/internal/transcript"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumberd = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// writeDocx renders the annotated summary as a styled docx: section headings,
// body text with inline bold, each quote as an indented timestamped line, and
// the full transcript appended at the end.
func writeDocx(title string, a *align.AnnotatedSummary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, sec := range a.Sections {
		if sec.Title != "" {
			addStyledRun(doc.AddParagraph(""), sec.Title, true, 15)
		}
		for _, line := range strings.Split(sec.Content, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || trimmed == "---" {
				continue
			}
			p := doc.AddParagraph("")
			if m := reBullet.FindStringSubmatch(trimmed); m != nil {
				addRichText(p, "• "+m[1])
				continue
			}
			if m := reNumberd.FindStringSubmatch(trimmed); m != nil {
				addRichText(p, trimmed)
				continue
			}
			addRichText(p, trimmed)
		}
		for _, q := range sec.Quotes {
			p := doc.AddParagraph("")
			p.AddText("[" + q.Formatted + "] “" + q.Text + "”").
				Font(fontName).Size(fontSize).Color("555555").Italic(true)
		}
		doc.AddParagraph("")
	}

	if len(a.Segments) > 0 {
		addStyledRun(doc.AddParagraph(""), "Full transcript", true, 15)
		for _, s := range a.Segments {
			p := doc.AddParagraph("")
			p.AddText("[" + transcript.FormatClock(s.Start) + "] " + s.Text).
				Font(fontName).Size(fontSize).Color("000000")
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText splits **bold** spans out of a line and emits alternating
// regular and bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
