package align

import (
	"testing"

	"github.com/ngocvu0811/study-flow/internal/transcript"
)

func TestMatchConceptsClaimsSegmentsOnce(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 0, "we train machine learning models daily"),
	}
	// Both concepts substring-match the same segment; the longer one arrives
	// first and claims it.
	concepts := []string{"machine learning models", "machine learning"}

	matches := MatchConcepts(concepts, segments)

	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if _, ok := matches["machine learning models"]; !ok {
		t.Errorf("longest concept should own the segment, got %v", matches)
	}
}

func TestMatchConceptsDistinctSegments(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 0, "gradient descent updates weights"),
		seg(1, 10, "convolution layers extract features"),
	}
	concepts := []string{"convolution layers", "gradient descent"}

	matches := MatchConcepts(concepts, segments)

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches["gradient descent"].ID != 0 || matches["convolution layers"].ID != 1 {
		t.Errorf("matches = %v", matches)
	}
}

func TestAnnotate(t *testing.T) {
	raw := "WEBVTT\n\n00:01:05.000 --> 00:01:10.000\ntoday we look at gradient descent optimization in detail\n\n00:02:00.000 --> 00:02:05.000\nnothing else of note happens here"
	tr := transcript.Parse(raw)

	summary := "A short lecture overview sentence appears first.\n## Key ideas\nThe speaker covers gradient descent optimization carefully.\n## Closing\nCompletely unrelated farewell remarks without transcript echo."

	got := Annotate(summary, tr)

	if got.SummaryText != summary {
		t.Error("SummaryText should keep the unannotated summary")
	}
	if got.FullTranscript != tr.FullText {
		t.Error("FullTranscript should pass through from the transcription")
	}
	if len(got.Segments) != 2 {
		t.Errorf("len(Segments) = %d, want 2", len(got.Segments))
	}

	if len(got.Sections) != 3 {
		t.Fatalf("len(Sections) = %d, want 3", len(got.Sections))
	}

	// The "Key ideas" section shares a verbatim phrase with segment 0 and
	// must carry its quote, timestamped from the segment start.
	key := got.Sections[1]
	if key.Title != "Key ideas" {
		t.Fatalf("Sections[1].Title = %q", key.Title)
	}
	if len(key.Quotes) == 0 {
		t.Fatal("expected at least one quote on the Key ideas section")
	}
	if key.Quotes[0].Text != "today we look at gradient descent optimization in detail" {
		t.Errorf("Quotes[0].Text = %q", key.Quotes[0].Text)
	}
	if key.Quotes[0].Formatted != "1:05" {
		t.Errorf("Quotes[0].Formatted = %q, want 1:05", key.Quotes[0].Formatted)
	}

	// Every section respects the quote cap and quote uniqueness.
	for _, sec := range got.Sections {
		if len(sec.Quotes) > maxQuotesPerSection {
			t.Errorf("section %q has %d quotes", sec.Title, len(sec.Quotes))
		}
		seen := make(map[string]bool)
		for _, q := range sec.Quotes {
			if seen[q.Text] {
				t.Errorf("section %q repeats quote %q", sec.Title, q.Text)
			}
			seen[q.Text] = true
		}
	}
}

func TestAnnotateNoMatches(t *testing.T) {
	tr := transcript.Parse("WEBVTT\n\n00:00:01.000 --> 00:00:04.000\nzzz qqq vvv www")

	summary := "## Topic\nEntirely different vocabulary fills this section completely."
	got := Annotate(summary, tr)

	if len(got.Sections) != 1 {
		t.Fatalf("len(Sections) = %d, want 1", len(got.Sections))
	}
	if len(got.Sections[0].Quotes) != 0 {
		t.Errorf("Quotes = %v, want empty (graceful no-match)", got.Sections[0].Quotes)
	}
}

func TestAnnotatePlainTranscript(t *testing.T) {
	// A transcript with no segments still produces sections, just no quotes.
	tr := transcript.Parse("plain transcript text with no timing at all")

	got := Annotate("## Topic\nSome body content goes here for the section.", tr)

	if len(got.Sections) != 1 || len(got.Sections[0].Quotes) != 0 {
		t.Errorf("got %+v, want one quoteless section", got.Sections)
	}
}
