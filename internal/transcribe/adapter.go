package transcribe

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"clipscribe/models"
)

// Adapter normalizes raw engine output into the segment sequence the rest
// of the system works with. The engine is injected once at construction
// rather than cached behind a package global.
type Adapter struct {
	engine   Engine
	beamSize int
	log      *logrus.Logger
}

func NewAdapter(engine Engine, beamSize int, log *logrus.Logger) *Adapter {
	return &Adapter{engine: engine, beamSize: beamSize, log: log}
}

// Run transcribes the audio file at path and returns the concatenated
// transcript plus the normalized segments. Each segment text is trimmed of
// surrounding whitespace and its timestamps rounded to two decimals; the
// transcript is the trimmed texts joined by single spaces. An engine error
// is propagated untouched — no retry, no partial result.
func (a *Adapter) Run(ctx context.Context, audioPath string) (string, []models.Segment, string, error) {
	out, err := a.engine.Transcribe(ctx, audioPath, Options{BeamSize: a.beamSize})
	if err != nil {
		return "", nil, "", fmt.Errorf("transcription engine: %w", err)
	}

	segments := make([]models.Segment, 0, len(out.Segments))
	texts := make([]string, 0, len(out.Segments))
	for _, raw := range out.Segments {
		text := strings.TrimSpace(raw.Text)
		segments = append(segments, models.Segment{
			Start: round2(raw.Start),
			End:   round2(raw.End),
			Text:  text,
		})
		texts = append(texts, text)
	}

	transcript := strings.Join(texts, " ")

	a.log.WithFields(logrus.Fields{
		"segments": len(segments),
		"language": out.Language,
	}).Info("Transcription normalized")

	return transcript, segments, out.Language, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
