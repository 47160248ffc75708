package highlight

import (
	"fmt"
	"math"

	"clipscribe/models"
)

// DefaultInterval is the minimum spacing, in seconds, between key points
// when the caller does not ask for anything else.
const DefaultInterval = 30.0

// Extract selects a sparse subset of segments to serve as a skimmable
// outline and formats each as "[<seconds>s] <text>".
//
// A segment is selected when its start time has reached the current
// threshold; the threshold then advances by interval from its previous
// value, NOT from the selected segment's start. Spacing between selected
// points can therefore exceed interval. That additive threshold is
// long-standing observable behavior and must not be "fixed" to reset at the
// selected time.
func Extract(segments []models.Segment, interval float64) []string {
	if interval <= 0 {
		interval = DefaultInterval
	}

	var points []string
	last := 0.0
	for _, seg := range segments {
		if seg.Start >= last {
			points = append(points, fmt.Sprintf("[%ds] %s", int(math.Floor(seg.Start)), seg.Text))
			last += interval
		}
	}
	return points
}
