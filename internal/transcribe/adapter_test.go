package transcribe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeEngine struct {
	out   Output
	err   error
	calls int
	opts  Options
}

func (f *fakeEngine) Transcribe(_ context.Context, _ string, opts Options) (Output, error) {
	f.calls++
	f.opts = opts
	return f.out, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestAdapter_NormalizesSegments(t *testing.T) {
	eng := &fakeEngine{out: Output{
		Language: "en",
		Segments: []RawSegment{
			{ID: 0, Start: 0.004, End: 2.349, Text: "  Hello there.  "},
			{ID: 1, Start: 2.349, End: 5.0, Text: "\tSecond utterance.\n"},
		},
	}}
	a := NewAdapter(eng, 5, quietLogger())

	transcript, segments, lang, err := a.Run(context.Background(), "dummy.mp3")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if lang != "en" {
		t.Errorf("language = %q, want en", lang)
	}
	if transcript != "Hello there. Second utterance." {
		t.Errorf("transcript = %q", transcript)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Start != 0.0 || segments[0].End != 2.35 {
		t.Errorf("segment 0 times = (%v, %v), want (0, 2.35)", segments[0].Start, segments[0].End)
	}
	if segments[0].Text != "Hello there." {
		t.Errorf("segment 0 text = %q, want trimmed text", segments[0].Text)
	}
}

func TestAdapter_TranscriptEqualsJoinedSegments(t *testing.T) {
	eng := &fakeEngine{out: Output{Segments: []RawSegment{
		{Text: " a "}, {Text: "b"}, {Text: " c"},
	}}}
	a := NewAdapter(eng, 5, quietLogger())

	transcript, segments, _, err := a.Run(context.Background(), "dummy.mp3")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	if want := strings.Join(texts, " "); transcript != want {
		t.Errorf("transcript = %q, want join of segment texts %q", transcript, want)
	}
}

func TestAdapter_EmptyEngineOutput(t *testing.T) {
	a := NewAdapter(&fakeEngine{}, 5, quietLogger())
	transcript, segments, _, err := a.Run(context.Background(), "dummy.mp3")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if transcript != "" {
		t.Errorf("transcript = %q, want empty", transcript)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %d", len(segments))
	}
}

func TestAdapter_PropagatesEngineError(t *testing.T) {
	boom := errors.New("corrupt file")
	eng := &fakeEngine{err: boom}
	a := NewAdapter(eng, 5, quietLogger())

	_, _, _, err := a.Run(context.Background(), "dummy.mp3")
	if !errors.Is(err, boom) {
		t.Errorf("expected engine error to propagate, got %v", err)
	}
	if eng.calls != 1 {
		t.Errorf("expected exactly one engine call (no retries), got %d", eng.calls)
	}
}

func TestAdapter_PassesBeamSize(t *testing.T) {
	eng := &fakeEngine{}
	a := NewAdapter(eng, 5, quietLogger())
	if _, _, _, err := a.Run(context.Background(), "dummy.mp3"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if eng.opts.BeamSize != 5 {
		t.Errorf("beam size = %d, want 5", eng.opts.BeamSize)
	}
}
