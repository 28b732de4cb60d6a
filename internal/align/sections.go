package align

import (
	"regexp"
	"strings"

	"github.com/ngocvu0811/study-flow/internal/transcript"
)

var reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// SplitSections breaks markdown summary text into header-delimited sections.
// Content before the first header becomes an untitled leading section.
// Sections whose content trims to nothing are dropped, so a header with no
// body never appears in the output.
func SplitSections(summary string) []Section {
	var sections []Section
	title := ""
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			sections = append(sections, Section{Title: title, Content: content})
		}
		buf = nil
	}

	for _, line := range strings.Split(summary, "\n") {
		if m := reHeading.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			title = strings.TrimSpace(m[2])
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return sections
}

// AttachQuotes annotates each section with up to two quotes. Concepts are
// re-extracted from the section's own content but resolved only through the
// prebuilt global map; the matcher is never re-run here. Quotes are
// de-duplicated by exact text and capped so one dense section cannot harvest
// every attributable segment.
func AttachQuotes(sections []Section, matches map[string]transcript.Segment) []Section {
	for i := range sections {
		sec := &sections[i]
		sec.Quotes = []QuotedSegment{}

		for _, concept := range ExtractConcepts(sec.Content) {
			if len(sec.Quotes) >= maxQuotesPerSection {
				break
			}
			seg, ok := matches[concept]
			if !ok {
				continue
			}

			dup := false
			for _, q := range sec.Quotes {
				if q.Text == seg.Text {
					dup = true
					break
				}
			}
			if dup {
				continue
			}

			sec.Quotes = append(sec.Quotes, QuotedSegment{
				Start:     seg.Start,
				End:       seg.End,
				Text:      seg.Text,
				Formatted: transcript.FormatShort(seg.Start),
			})
		}
	}
	return sections
}
