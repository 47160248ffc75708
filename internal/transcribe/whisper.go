package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// WhisperEngine talks to a whisper ASR webservice over HTTP. One instance is
// constructed at startup with the model configuration and shared for the
// life of the process; the service keeps the model loaded, so calls after
// the first are not paying the load cost again.
type WhisperEngine struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewWhisperEngine builds the process-wide engine client. A zero timeout
// disables the client-side deadline; transcription of long media can
// legitimately run for minutes.
func NewWhisperEngine(baseURL, model string, timeout time.Duration, log *logrus.Logger) *WhisperEngine {
	return &WhisperEngine{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Transcribe uploads the audio file and decodes the engine's JSON response.
// Engine failures are returned as-is: no retry, no partial result.
func (w *WhisperEngine) Transcribe(ctx context.Context, audioPath string, opts Options) (Output, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return Output{}, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio_file", filepath.Base(audioPath))
	if err != nil {
		return Output{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return Output{}, fmt.Errorf("write audio data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Output{}, fmt.Errorf("close multipart writer: %w", err)
	}

	q := url.Values{}
	q.Set("task", "transcribe")
	q.Set("output", "json")
	q.Set("encode", "true")
	if w.model != "" {
		q.Set("model", w.model)
	}
	if opts.BeamSize > 0 {
		q.Set("beam_size", fmt.Sprintf("%d", opts.BeamSize))
	}
	requestURL := fmt.Sprintf("%s/asr?%s", w.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, &body)
	if err != nil {
		return Output{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return Output{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Output{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		w.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(responseBody),
		}).Error("Whisper service returned an error")
		return Output{}, fmt.Errorf("whisper service returned status %d: %s", resp.StatusCode, string(responseBody))
	}

	var out Output
	if err := json.Unmarshal(responseBody, &out); err != nil {
		return Output{}, fmt.Errorf("decode whisper response: %w", err)
	}

	w.log.WithFields(logrus.Fields{
		"language": out.Language,
		"segments": len(out.Segments),
	}).Debug("Whisper transcription complete")

	return out, nil
}
