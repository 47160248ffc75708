package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clipscribe/config"
	"clipscribe/internal/acquire"
	"clipscribe/internal/transcribe"
)

var rootCmd = &cobra.Command{
	Use:   "clipscribe",
	Short: "Transcribe uploaded media or YouTube links with timestamped key points",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newPipeline builds the acquisition and transcription components from the
// loaded settings. The engine client is constructed exactly once here and
// handed to the adapter; nothing downstream caches it globally.
func newPipeline(cfg *config.Settings) (*acquire.Acquirer, *transcribe.Adapter) {
	engine := transcribe.NewWhisperEngine(cfg.Whisper.URL, cfg.Whisper.Model, cfg.Whisper.Timeout, config.Log)
	adapter := transcribe.NewAdapter(engine, cfg.Whisper.BeamSize, config.Log)
	acquirer := acquire.New(cfg.Media.TmpDir, cfg.Media.YtdlpPath, cfg.Media.FfprobePath, config.Log)
	return acquirer, adapter
}
