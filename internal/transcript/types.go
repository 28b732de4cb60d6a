// Package transcript normalizes raw speech-to-text payloads into a uniform
// sequence of timestamped segments. Providers answer in one of three shapes:
// a structured JSON body with per-segment timings, a WEBVTT caption file, or
// an SRT caption file. Anything else is kept as plain untimed text.
package transcript

// Segment is a single timestamped utterance from a transcript.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcription is the normalized parse result for one media source.
type Transcription struct {
	FullText string    `json:"full_transcript"`
	Segments []Segment `json:"segments"`

	// Duration is the end time of the last segment, 0 when the payload
	// carried no timing information.
	Duration float64 `json:"duration,omitempty"`

	// Language is passed through from the caller's transcription options.
	Language string `json:"language,omitempty"`

	// Raw keeps the untouched provider payload for debugging. It is never
	// interpreted after parsing.
	Raw string `json:"-"`
}
