package acquire

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AcquireError marks failures while obtaining audio (bad URL, network,
// extractor). These are reported to the user and stop the pipeline before
// transcription; they are never fatal to the process.
type AcquireError struct {
	Op  string
	Err error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("audio acquisition (%s): %v", e.Op, e.Err)
}

func (e *AcquireError) Unwrap() error { return e.Err }

// Acquirer produces a local audio file path from either an uploaded byte
// stream or a remote video URL.
type Acquirer struct {
	tmpDir  string
	ytdlp   string
	ffprobe string
	log     *logrus.Logger
}

func New(tmpDir, ytdlpPath, ffprobePath string, log *logrus.Logger) *Acquirer {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &Acquirer{tmpDir: tmpDir, ytdlp: ytdlpPath, ffprobe: ffprobePath, log: log}
}

// SaveUpload writes the uploaded bytes verbatim to a uniquely named file in
// the temp dir, keeping the original extension. No transcoding happens on
// the upload path.
func (a *Acquirer) SaveUpload(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	dst := filepath.Join(a.tmpDir, uuid.NewString()+ext)

	f, err := os.Create(dst)
	if err != nil {
		return "", &AcquireError{Op: "save upload", Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", &AcquireError{Op: "save upload", Err: err}
	}

	a.log.WithFields(logrus.Fields{"path": dst, "original": filename}).Info("Upload saved")
	return dst, nil
}

// FetchURL resolves a video URL with yt-dlp, extracting the audio stream
// and transcoding it to mp3 so the extension always matches the codec. The
// context bounds the subprocess; a disconnected client kills the download.
func (a *Acquirer) FetchURL(ctx context.Context, rawURL string) (string, error) {
	id := uuid.NewString()
	template := filepath.Join(a.tmpDir, id+".%(ext)s")
	dst := filepath.Join(a.tmpDir, id+".mp3")

	cmd := exec.CommandContext(ctx, a.ytdlp,
		"-f", "bestaudio",
		"-x", "--audio-format", "mp3",
		"--no-playlist",
		"-o", template,
		rawURL,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &AcquireError{
			Op:  "fetch url",
			Err: fmt.Errorf("%w (stderr: %s)", err, strings.TrimSpace(stderr.String())),
		}
	}

	if _, err := os.Stat(dst); err != nil {
		return "", &AcquireError{Op: "fetch url", Err: fmt.Errorf("expected output missing: %w", err)}
	}

	a.log.WithFields(logrus.Fields{"path": dst, "url": rawURL}).Info("Audio downloaded")
	return dst, nil
}

// Cleanup removes an acquired file. Callers defer this on every exit path,
// success or failure, so a failed transcription never leaks its audio.
func (a *Acquirer) Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		a.log.WithFields(logrus.Fields{"path": path, "error": err.Error()}).Warn("Failed to remove temp audio")
	}
}
