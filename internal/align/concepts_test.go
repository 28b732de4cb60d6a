package align

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractConceptsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, "This sentence number %d carries plenty of unique content for extraction. ", i)
	}

	concepts := ExtractConcepts(b.String())

	if len(concepts) > maxConcepts {
		t.Errorf("len(concepts) = %d, want <= %d", len(concepts), maxConcepts)
	}

	seen := make(map[string]bool)
	for _, c := range concepts {
		if seen[c] {
			t.Errorf("duplicate concept %q", c)
		}
		seen[c] = true
	}
}

func TestExtractConceptsSortedLongestFirst(t *testing.T) {
	concepts := ExtractConcepts("The gradient descent algorithm minimizes the loss function iteratively. Backpropagation computes gradients.")

	for i := 1; i < len(concepts); i++ {
		if utf8.RuneCountInString(concepts[i]) > utf8.RuneCountInString(concepts[i-1]) {
			t.Fatalf("concepts not sorted by length: %q before %q", concepts[i-1], concepts[i])
		}
	}
}

func TestExtractConceptsMultiByteLengths(t *testing.T) {
	// 14 runes but 20 bytes: must stay under the sentence cutoff.
	concepts := ExtractConcepts("Đây là bài học.")
	if len(concepts) != 0 {
		t.Errorf("ExtractConcepts() = %v, want no concepts from short Vietnamese text", concepts)
	}

	concepts = ExtractConcepts("Chúng ta sẽ học về đạo hàm riêng hôm nay.")
	if !contains(concepts, "Chúng ta sẽ học về đạo hàm riêng hôm nay") {
		t.Errorf("sentence over the rune cutoff missing from %v", concepts)
	}
	if !contains(concepts, "Chúng") {
		t.Errorf("5-rune capitalized word missing from %v", concepts)
	}
	for _, c := range concepts {
		if c == "Đây" || c == "hàm" {
			t.Errorf("3-rune word %q should not qualify as a concept", c)
		}
	}
}

func TestExtractConceptsSentences(t *testing.T) {
	concepts := ExtractConcepts("Short one. The transformer architecture relies on attention mechanisms!")

	if !contains(concepts, "The transformer architecture relies on attention mechanisms") {
		t.Errorf("long sentence missing from %v", concepts)
	}
	if contains(concepts, "Short one") {
		t.Errorf("sentence under the length cutoff should not be a concept: %v", concepts)
	}
}

func TestExtractConceptsCapitalizedWords(t *testing.T) {
	concepts := ExtractConcepts("we deployed Kubernetes, and the api was fine")

	if !contains(concepts, "Kubernetes") {
		t.Errorf("capitalized term missing (trailing punctuation should be stripped): %v", concepts)
	}
	// Lowercase or short tokens never qualify as single-word concepts.
	for _, c := range concepts {
		if c == "deployed" || c == "api" {
			t.Errorf("unexpected single-word concept %q", c)
		}
	}
}

func TestExtractConceptsBigrams(t *testing.T) {
	concepts := ExtractConcepts("training neural networks takes time")

	if !contains(concepts, "neural networks") {
		t.Errorf("adjacent long-word pair missing: %v", concepts)
	}
	if contains(concepts, "takes time") {
		t.Errorf("pair with a short word should be rejected: %v", concepts)
	}
}

func TestExtractConceptsEmptyInput(t *testing.T) {
	if got := ExtractConcepts(""); len(got) != 0 {
		t.Errorf("ExtractConcepts(\"\") = %v, want empty", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
