package transcribe

import "context"

// RawSegment is one utterance exactly as the speech engine reported it,
// before normalization.
type RawSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Output bundles a single engine pass. The engine's utterance stream is not
// restartable, so implementations drain it exactly once into Segments.
type Output struct {
	Text     string       `json:"text"`
	Language string       `json:"language"`
	Segments []RawSegment `json:"segments,omitempty"`
}

// Options tunes a single transcription call.
type Options struct {
	BeamSize int
}

// Engine is a pluggable speech-to-text backend.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (Output, error)
}
