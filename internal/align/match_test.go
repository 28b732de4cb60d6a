package align

import (
	"testing"

	"github.com/ngocvu0811/study-flow/internal/transcript"
)

func seg(id int, start float64, text string) transcript.Segment {
	return transcript.Segment{ID: id, Start: start, End: start + 5, Text: text}
}

func TestFindBestMatchSubstringWins(t *testing.T) {
	// Segment 0 scores a perfect token overlap, but segment 1 carries the
	// concept verbatim: the substring pass must win.
	segments := []transcript.Segment{
		seg(0, 0, "alpha and also beta appear separately here"),
		seg(1, 10, "we now combine alpha beta into one term"),
	}

	got, ok := FindBestMatch("alpha beta", segments)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID != 1 {
		t.Errorf("matched segment %d, want 1 (substring match)", got.ID)
	}
}

func TestFindBestMatchFirstSubstringWins(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 0, "gradient descent introduced"),
		seg(1, 10, "gradient descent revisited"),
	}

	got, ok := FindBestMatch("Gradient Descent", segments)
	if !ok || got.ID != 0 {
		t.Errorf("got %+v ok=%v, want first substring match (id 0)", got, ok)
	}
}

func TestFindBestMatchTokenOverlapFallback(t *testing.T) {
	// No segment contains the full phrase; overlap decides.
	segments := []transcript.Segment{
		seg(0, 0, "today we cover unrelated material"),
		seg(1, 10, "gradient descent optimizes parameters"),
	}

	got, ok := FindBestMatch("the gradient descent method", segments)
	if !ok {
		t.Fatal("expected a fallback match")
	}
	if got.ID != 1 {
		t.Errorf("matched segment %d, want 1", got.ID)
	}
}

func TestFindBestMatchTokenContainment(t *testing.T) {
	// A concept token matches when some segment token contains it as a
	// substring ("learn" inside "learning").
	segments := []transcript.Segment{
		seg(0, 0, "machine learning changes everything"),
	}

	if _, ok := FindBestMatch("machines learn", segments); !ok {
		t.Error("expected containment-based overlap match")
	}
}

func TestFindBestMatchThreshold(t *testing.T) {
	// 1 of 4 tokens = 0.25, at or below the 0.3 floor: no match.
	segments := []transcript.Segment{
		seg(0, 0, "gradient appears alone in this text"),
	}

	if got, ok := FindBestMatch("gradient wombat xylophone quasar", segments); ok {
		t.Errorf("expected no match below threshold, got %+v", got)
	}
}

func TestFindBestMatchFirstOfTiedMaxWins(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 0, "something about gradient methods"),
		seg(1, 10, "more gradient methods here"),
	}

	got, ok := FindBestMatch("gradient methods overview", segments)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID != 0 {
		t.Errorf("matched segment %d, want 0 (first of tied maxima)", got.ID)
	}
}

func TestFindBestMatchNoSegments(t *testing.T) {
	if _, ok := FindBestMatch("anything", nil); ok {
		t.Error("expected no match against empty segment list")
	}
}
