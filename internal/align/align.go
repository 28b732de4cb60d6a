// Package align anchors an LLM-generated summary back onto its source
// transcript. Candidate phrases are extracted from the summary, bound to the
// best-matching transcript segments, and attached as time-coded quotes to the
// summary's markdown sections.
package align

import (
	"github.com/ngocvu0811/study-flow/internal/transcript"
)

// QuotedSegment is a transcript segment promoted into a citation.
type QuotedSegment struct {
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Text      string  `json:"text"`
	Formatted string  `json:"formatted"`
}

// Section is one header-delimited block of the summary with its quotes.
// Title is empty for content that precedes the first header.
type Section struct {
	Title   string          `json:"title,omitempty"`
	Content string          `json:"content"`
	Quotes  []QuotedSegment `json:"quotes"`
}

// AnnotatedSummary is the full output of the alignment engine. The source
// transcript and the unannotated summary ride along so callers can render a
// complete transcript view or fall back to plain text.
type AnnotatedSummary struct {
	Sections       []Section            `json:"sections"`
	FullTranscript string               `json:"full_transcript"`
	Segments       []transcript.Segment `json:"segments"`
	SummaryText    string               `json:"summary_text"`
}

// MatchConcepts greedily assigns concepts to segments. Concepts are expected
// longest first; each segment may be claimed once, so the most specific phrase
// owns it and no segment is cited for two unrelated concepts.
func MatchConcepts(concepts []string, segments []transcript.Segment) map[string]transcript.Segment {
	claimed := make(map[int]bool)
	matches := make(map[string]transcript.Segment)

	for _, concept := range concepts {
		seg, ok := FindBestMatch(concept, segments)
		if !ok || claimed[seg.ID] {
			continue
		}
		claimed[seg.ID] = true
		matches[concept] = seg
	}
	return matches
}

// Annotate runs the full alignment pipeline: one global extraction and
// matching pass over the whole summary, then per-section quote attachment via
// lookup only. Sections never re-run the matcher, so a segment claimed by one
// concept cannot resurface under another title.
func Annotate(summary string, tr *transcript.Transcription) *AnnotatedSummary {
	concepts := ExtractConcepts(summary)
	matches := MatchConcepts(concepts, tr.Segments)

	return &AnnotatedSummary{
		Sections:       AttachQuotes(SplitSections(summary), matches),
		FullTranscript: tr.FullText,
		Segments:       tr.Segments,
		SummaryText:    summary,
	}
}
