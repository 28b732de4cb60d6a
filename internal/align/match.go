package align

import (
	"strings"

	"github.com/ngocvu0811/study-flow/internal/transcript"
)

// FindBestMatch binds a concept phrase to the transcript segment that best
// carries it. An exact lower-cased substring hit wins outright, first segment
// in order, because summarizers often keep technical terms verbatim. When the
// summary paraphrases, a token-overlap fallback picks the segment covering the
// largest share of the concept's tokens; anything at or below 0.3 is rejected
// as noise. The first segment to reach the maximum score wins ties.
func FindBestMatch(concept string, segments []transcript.Segment) (transcript.Segment, bool) {
	needle := strings.ToLower(concept)

	for _, seg := range segments {
		if strings.Contains(strings.ToLower(seg.Text), needle) {
			return seg, true
		}
	}

	conceptToks := strings.Fields(needle)
	if len(conceptToks) == 0 {
		return transcript.Segment{}, false
	}

	var best transcript.Segment
	bestScore := 0.0
	found := false

	for _, seg := range segments {
		segToks := strings.Fields(strings.ToLower(seg.Text))
		hits := 0
		for _, ct := range conceptToks {
			for _, st := range segToks {
				if strings.Contains(st, ct) {
					hits++
					break
				}
			}
		}

		score := float64(hits) / float64(len(conceptToks))
		if score > minOverlapScore && score > bestScore {
			bestScore = score
			best = seg
			found = true
		}
	}
	return best, found
}
