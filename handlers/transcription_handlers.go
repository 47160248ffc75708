package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clipscribe/internal/highlight"
	"clipscribe/internal/worker"
	"clipscribe/models"
	"clipscribe/utils"
)

// URLTranscriptionPayload is the body of POST /api/v1/transcriptions/url.
type URLTranscriptionPayload struct {
	URL      string   `json:"url" validate:"required,url"`
	Interval *float64 `json:"interval,omitempty" validate:"omitempty,gt=0"`
}

// transcriptionJob runs the adapter for one acquired audio file. It
// implements worker.Job so the dispatcher can line requests up in front of
// the shared engine.
type transcriptionJob struct {
	id        string
	audioPath string
	h         *ApplicationHandler

	transcript string
	segments   []models.Segment
	language   string
}

func (j *transcriptionJob) ID() string { return j.id }

func (j *transcriptionJob) Execute(ctx context.Context) error {
	transcript, segments, language, err := j.h.Adapter.Run(ctx, j.audioPath)
	if err != nil {
		return err
	}
	j.transcript = transcript
	j.segments = segments
	j.language = language
	return nil
}

// TranscribeUpload handles POST /api/v1/transcriptions/upload: a multipart
// "file" field with the media bytes plus an optional "interval" form value.
func (h *ApplicationHandler) TranscribeUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Error getting file: %v", err))
	}

	interval := h.Interval
	if raw := c.FormValue("interval"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "interval must be a positive number of seconds")
		}
		interval = parsed
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error opening file: %v", err))
	}
	defer src.Close()

	audioPath, err := h.Acquirer.SaveUpload(src, fileHeader.Filename)
	if err != nil {
		h.Log.WithField("error", err.Error()).Error("Upload acquisition failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not store the uploaded file")
	}
	defer h.Acquirer.Cleanup(audioPath)

	return h.runPipeline(c, audioPath, "upload:"+fileHeader.Filename, interval)
}

// TranscribeURL handles POST /api/v1/transcriptions/url. An acquisition
// failure (unreachable URL, extractor error) is reported to the caller and
// the engine is never invoked for that request.
func (h *ApplicationHandler) TranscribeURL(c *fiber.Ctx) error {
	var payload URLTranscriptionPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse JSON: %v", err))
	}
	if err := h.validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	interval := h.Interval
	if payload.Interval != nil {
		interval = *payload.Interval
	}

	audioPath, err := h.Acquirer.FetchURL(c.UserContext(), payload.URL)
	if err != nil {
		h.Log.WithFields(map[string]interface{}{"url": payload.URL, "error": err.Error()}).Warn("URL acquisition failed")
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Could not fetch audio from the URL: %v", errors.Unwrap(err)))
	}
	defer h.Acquirer.Cleanup(audioPath)

	return h.runPipeline(c, audioPath, payload.URL, interval)
}

// runPipeline transcribes an already-acquired audio file and renders the
// result envelope. The audio file's cleanup is owned by the caller.
func (h *ApplicationHandler) runPipeline(c *fiber.Ctx, audioPath, source string, interval float64) error {
	ctx := c.UserContext()

	job := &transcriptionJob{id: uuid.NewString(), audioPath: audioPath, h: h}
	if err := h.Dispatcher.SubmitWait(ctx, job); err != nil {
		if errors.Is(err, worker.ErrBusy) {
			return utils.RespondWithError(c, fiber.StatusServiceUnavailable,
				"Another transcription is in progress, try again shortly")
		}
		h.Log.WithFields(map[string]interface{}{"source": source, "error": err.Error()}).Error("Transcription failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Transcription failed")
	}

	result := models.TranscriptionResult{
		Transcript: job.transcript,
		Segments:   job.segments,
		KeyPoints:  highlight.Extract(job.segments, interval),
		Language:   job.language,
		Source:     source,
	}

	// Duration is advisory; a probe failure only loses the metadata.
	if seconds, err := h.Acquirer.ProbeDuration(ctx, audioPath); err == nil {
		result.Duration = seconds
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, result)
}
