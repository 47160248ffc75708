package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"clipscribe/models"
)

func TestTranscriptTxt(t *testing.T) {
	var buf bytes.Buffer
	if err := TranscriptTxt(&buf, "hello world"); err != nil {
		t.Fatalf("TranscriptTxt: %v", err)
	}
	if buf.String() != "hello world" {
		t.Errorf("output = %q, want %q", buf.String(), "hello world")
	}
}

func TestSegmentsCSV_RoundTrip(t *testing.T) {
	in := []models.Segment{
		{Start: 0, End: 2.35, Text: "Hello there."},
		{Start: 2.35, End: 5.1, Text: "Commas, \"quotes\" and\nnewlines survive."},
		{Start: 5.1, End: 9, Text: "Last one."},
	}

	var buf bytes.Buffer
	if err := SegmentsCSV(&buf, in); err != nil {
		t.Fatalf("SegmentsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported csv: %v", err)
	}
	if len(records) != len(in)+1 {
		t.Fatalf("expected %d records (header + rows), got %d", len(in)+1, len(records))
	}

	header := records[0]
	if len(header) != 3 || header[0] != "Start" || header[1] != "End" || header[2] != "Text" {
		t.Errorf("header = %v, want [Start End Text]", header)
	}

	for i, seg := range in {
		row := records[i+1]
		start, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			t.Fatalf("row %d start %q: %v", i, row[0], err)
		}
		end, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			t.Fatalf("row %d end %q: %v", i, row[1], err)
		}
		if start != seg.Start || end != seg.End || row[2] != seg.Text {
			t.Errorf("row %d = (%v, %v, %q), want (%v, %v, %q)",
				i, start, end, row[2], seg.Start, seg.End, seg.Text)
		}
	}
}

func TestSegmentsCSV_EmptyInputHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := SegmentsCSV(&buf, nil); err != nil {
		t.Fatalf("SegmentsCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %d records", len(records))
	}
}
