package models

// Segment is a single timed span of transcribed speech. Times are in
// seconds, rounded to two decimals when the segment is built. Segments are
// immutable once created and ordered by non-decreasing start time.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the full outcome of one transcription request.
// Transcript is derived: it always equals the space-joined concatenation of
// the segment texts in order.
type TranscriptionResult struct {
	Transcript string    `json:"transcript"`
	Segments   []Segment `json:"segments"`
	KeyPoints  []string  `json:"key_points"`
	Language   string    `json:"language,omitempty"`
	Source     string    `json:"source"`
	Duration   float64   `json:"duration,omitempty"`
}
