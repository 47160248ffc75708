package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"clipscribe/internal/export"
	"clipscribe/models"
	"clipscribe/utils"
)

// ExportTranscriptPayload is the body of POST /api/v1/exports/transcript.
// The server holds no state between requests, so the browser posts the
// result it already has back for serialization.
type ExportTranscriptPayload struct {
	Transcript string `json:"transcript"`
}

// ExportSegmentsPayload is the body of POST /api/v1/exports/segments.
type ExportSegmentsPayload struct {
	Segments []models.Segment `json:"segments"`
}

// ExportTranscript returns the transcript as a transcript.txt attachment.
func (h *ApplicationHandler) ExportTranscript(c *fiber.Ctx) error {
	var payload ExportTranscriptPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse JSON: %v", err))
	}

	var buf bytes.Buffer
	if err := export.TranscriptTxt(&buf, payload.Transcript); err != nil {
		h.Log.WithField("error", err.Error()).Error("Transcript export failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not serialize transcript")
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transcript.txt"`)
	return c.Send(buf.Bytes())
}

// ExportSegments returns the segment table as a segments.csv attachment
// with a Start,End,Text header.
func (h *ApplicationHandler) ExportSegments(c *fiber.Ctx) error {
	var payload ExportSegmentsPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse JSON: %v", err))
	}

	var buf bytes.Buffer
	if err := export.SegmentsCSV(&buf, payload.Segments); err != nil {
		h.Log.WithField("error", err.Error()).Error("Segment export failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not serialize segments")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="segments.csv"`)
	return c.Send(buf.Bytes())
}
