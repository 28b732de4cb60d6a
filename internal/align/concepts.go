package align

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extraction and matching cutoffs, kept in one place. They decide which
// phrases become search keys and which segments qualify as quotes; changing
// one shifts which parts of a transcript get cited.
const (
	minSentenceLen       = 10
	confirmedSentenceLen = 15
	minTokenLen          = 4
	minBigramLen         = 8
	maxConcepts          = 30
	minOverlapScore      = 0.3
	maxQuotesPerSection  = 2
)

var sentenceSplit = regexp.MustCompile(`[.!?]`)

const trailingPunct = ".,!?;:"

// ExtractConcepts derives up to 30 candidate phrases from free text, longest
// first. It is a purely lexical heuristic with no stemming or tagging:
// substantial sentences, capitalized terms, and adjacent long-word pairs.
// Longer candidates sort first because they identify a specific transcript
// segment more reliably during matching.
func ExtractConcepts(text string) []string {
	seen := make(map[string]struct{})
	var concepts []string
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		concepts = append(concepts, c)
	}

	// Sentences pass a two-tier length filter: anything over 10 characters
	// is a candidate, anything over 15 is kept. The bias toward substantial,
	// quotable sentences over fragments is deliberate.
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > minSentenceLen {
			sentences = append(sentences, s)
		}
	}
	for _, s := range sentences {
		if utf8.RuneCountInString(s) > confirmedSentenceLen {
			add(s)
		}
	}

	// Single capitalized words over 4 characters: a cheap stand-in for
	// proper nouns and technical terms.
	tokens := strings.Fields(text)
	for _, tok := range tokens {
		w := strings.TrimRight(tok, trailingPunct)
		if utf8.RuneCountInString(w) > minTokenLen && startsUpper(w) {
			add(w)
		}
	}

	// Adjacent pairs of long words form two-word candidates.
	for i := 0; i+1 < len(tokens); i++ {
		a := strings.TrimRight(tokens[i], trailingPunct)
		b := strings.TrimRight(tokens[i+1], trailingPunct)
		if utf8.RuneCountInString(a) > minTokenLen && utf8.RuneCountInString(b) > minTokenLen {
			if pair := a + " " + b; utf8.RuneCountInString(pair) > minBigramLen {
				add(pair)
			}
		}
	}

	// Lengths count runes, not bytes, so multi-byte scripts clear the same
	// thresholds as ASCII.
	sort.SliceStable(concepts, func(i, j int) bool {
		return utf8.RuneCountInString(concepts[i]) > utf8.RuneCountInString(concepts[j])
	})
	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}
	return concepts
}

func startsUpper(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	return unicode.IsUpper(r)
}
