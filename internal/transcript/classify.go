package transcript

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Kind identifies the shape of a raw transcription payload.
type Kind int

const (
	KindPlain Kind = iota
	KindStructured
	KindVTT
	KindSRT
)

func (k Kind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindVTT:
		return "vtt"
	case KindSRT:
		return "srt"
	default:
		return "plain"
	}
}

// SRT timing lines use comma-separated milliseconds, VTT uses dots.
var reSRTTime = regexp.MustCompile(`\d{1,2}:\d{2}(:\d{2})?,\d{1,3}\s*-->`)

// Classify sniffs a raw payload and reports which parser should handle it.
// The three supported shapes are enumerable on purpose: dispatch happens here
// once, not via field probing at the use sites.
func Classify(raw string) Kind {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "{") {
		var probe struct {
			Text     *string           `json:"text"`
			Segments []json.RawMessage `json:"segments"`
		}
		if err := json.Unmarshal([]byte(trimmed), &probe); err == nil && (probe.Text != nil || probe.Segments != nil) {
			return KindStructured
		}
	}

	if !strings.Contains(trimmed, "-->") {
		return KindPlain
	}
	if strings.HasPrefix(trimmed, "WEBVTT") {
		return KindVTT
	}
	if reSRTTime.MatchString(trimmed) {
		return KindSRT
	}
	// Arrow separators with dot timings: a headerless VTT fragment.
	return KindVTT
}
