package transcript

import (
	"encoding/json"
	"strconv"
	"strings"
)

// structuredPayload mirrors the verbose-JSON response of whisper-style APIs.
// Pointer fields distinguish "absent" from zero so missing timings can be
// coerced explicitly.
type structuredPayload struct {
	Text     string `json:"text"`
	Segments []struct {
		ID    *int     `json:"id"`
		Start *float64 `json:"start"`
		End   *float64 `json:"end"`
		Text  string   `json:"text"`
	} `json:"segments"`
}

// Parse converts a raw transcription payload into a normalized Transcription.
// It never fails: malformed timestamps degrade to zero, unrecognized payloads
// become a plain transcript with no segments, and an empty payload yields an
// empty result. Partial transcripts are still useful downstream.
func Parse(raw string) *Transcription {
	tr := &Transcription{Raw: raw}

	switch Classify(raw) {
	case KindStructured:
		parseStructured(raw, tr)
	case KindVTT:
		tr.Segments = parseVTT(raw)
		tr.FullText = joinSegments(tr.Segments)
	case KindSRT:
		tr.Segments = parseSRT(raw)
		tr.FullText = joinSegments(tr.Segments)
	default:
		tr.FullText = strings.TrimSpace(raw)
	}

	if n := len(tr.Segments); n > 0 {
		tr.Duration = tr.Segments[n-1].End
	}
	return tr
}

func parseStructured(raw string, tr *Transcription) {
	var p structuredPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &p); err != nil {
		tr.FullText = strings.TrimSpace(raw)
		return
	}

	tr.FullText = p.Text
	for i, s := range p.Segments {
		seg := Segment{ID: i, Text: s.Text}
		if s.ID != nil {
			seg.ID = *s.ID
		}
		if s.Start != nil {
			seg.Start = *s.Start
		}
		if s.End != nil {
			seg.End = *s.End
		}
		tr.Segments = append(tr.Segments, seg)
	}
}

// parseVTT handles WEBVTT payloads. A line containing the arrow separator
// starts a cue; the non-empty lines that follow, up to the next timing line,
// are joined with spaces. Cues without text are not emitted.
func parseVTT(raw string) []Segment {
	var segs []Segment
	var start, end float64
	var textLines []string
	inCue := false

	flush := func() {
		if !inCue {
			return
		}
		text := strings.TrimSpace(strings.Join(textLines, " "))
		if text != "" {
			segs = append(segs, Segment{ID: len(segs), Start: start, End: end, Text: text})
		}
		textLines = nil
		inCue = false
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if strings.Contains(line, "-->") {
			flush()
			parts := strings.SplitN(line, "-->", 2)
			start = ParseTimestamp(strings.TrimSpace(parts[0]))
			end = 0
			// Cue settings may follow the end timestamp; only the first
			// field is the timestamp itself.
			if fields := strings.Fields(strings.TrimSpace(parts[1])); len(fields) > 0 {
				end = ParseTimestamp(fields[0])
			}
			inCue = true
			continue
		}
		if !inCue || line == "" || strings.HasPrefix(line, "WEBVTT") {
			continue
		}
		textLines = append(textLines, line)
	}
	flush()
	return segs
}

// parseSRT handles SubRip payloads: numbered entries separated by blank
// lines, each with an index line, a timing line, and one or more text lines.
// The index supplies the segment id, defaulting to 0 when unparseable.
func parseSRT(raw string) []Segment {
	var segs []Segment
	for _, block := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n\n") {
		var lines []string
		for _, l := range strings.Split(block, "\n") {
			if t := strings.TrimSpace(l); t != "" {
				lines = append(lines, t)
			}
		}

		timing := -1
		for i, l := range lines {
			if strings.Contains(l, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}

		id := 0
		if timing > 0 {
			if n, err := strconv.Atoi(lines[0]); err == nil {
				id = n
			}
		}

		parts := strings.SplitN(lines[timing], "-->", 2)
		text := strings.TrimSpace(strings.Join(lines[timing+1:], " "))
		if text == "" {
			continue
		}
		segs = append(segs, Segment{
			ID:    id,
			Start: ParseTimestamp(strings.TrimSpace(parts[0])),
			End:   ParseTimestamp(strings.TrimSpace(parts[1])),
			Text:  text,
		})
	}
	return segs
}

// ParseTimestamp converts a caption timestamp ("H:MM:SS.mmm" or "MM:SS.mmm",
// comma millis accepted) to seconds. Fewer than two colon-separated components
// or malformed numerics degrade to 0 rather than failing the whole parse.
func ParseTimestamp(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}

	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			v = 0
		}
		total = total*60 + v
	}
	return total
}

func joinSegments(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}
