package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"clipscribe/models"
)

// TranscriptTxt writes the transcript as plain text, the payload of the
// transcript.txt download.
func TranscriptTxt(w io.Writer, transcript string) error {
	if _, err := io.WriteString(w, transcript); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// SegmentsCSV writes the segment table as CSV with a Start,End,Text header
// and no index column. Times keep the two-decimal precision segments are
// stored with.
func SegmentsCSV(w io.Writer, segments []models.Segment) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Start", "End", "Text"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, seg := range segments {
		record := []string{
			strconv.FormatFloat(seg.Start, 'f', 2, 64),
			strconv.FormatFloat(seg.End, 'f', 2, 64),
			seg.Text,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
