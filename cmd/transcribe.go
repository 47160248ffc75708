package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"clipscribe/config"
	"clipscribe/internal/export"
	"clipscribe/internal/highlight"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file-or-url>",
	Short: "Run one transcription from the terminal",
	Args:  cobra.ExactArgs(1),
	Run:   runTranscribe,
}

func init() {
	transcribeCmd.Flags().StringP("output", "o", "", "Write the transcript to a file instead of stdout")
	transcribeCmd.Flags().String("csv", "", "Also write the segment table as CSV to this path")
	transcribeCmd.Flags().Float64("interval", 0, "Key point spacing in seconds (default from config)")
	transcribeCmd.Flags().Bool("keypoints", true, "Print the key point outline")
	transcribeCmd.Flags().BoolP("copy", "c", false, "Copy the transcript to the clipboard")
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(command *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.InitLogger(cfg.Debug)

	acquirer, adapter := newPipeline(cfg)
	ctx := context.Background()

	input := args[0]
	audioPath := input
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		fetched, err := acquirer.FetchURL(ctx, input)
		if err != nil {
			log.Fatalf("Could not fetch audio: %v", err)
		}
		defer acquirer.Cleanup(fetched)
		audioPath = fetched
	} else if _, err := os.Stat(input); err != nil {
		log.Fatalf("Input file: %v", err)
	}

	transcript, segments, language, err := adapter.Run(ctx, audioPath)
	if err != nil {
		log.Fatalf("Transcription failed: %v", err)
	}

	outputPath, _ := command.Flags().GetString("output")
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(transcript), 0o644); err != nil {
			log.Fatalf("Writing transcript: %v", err)
		}
	} else {
		fmt.Println(transcript)
	}

	if csvPath, _ := command.Flags().GetString("csv"); csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			log.Fatalf("Creating CSV file: %v", err)
		}
		defer f.Close()
		if err := export.SegmentsCSV(f, segments); err != nil {
			log.Fatalf("Writing CSV: %v", err)
		}
	}

	if show, _ := command.Flags().GetBool("keypoints"); show {
		interval, _ := command.Flags().GetFloat64("interval")
		if interval <= 0 {
			interval = cfg.KeyPoints.Interval
		}
		for _, point := range highlight.Extract(segments, interval) {
			fmt.Fprintln(os.Stderr, point)
		}
	}

	if doCopy, _ := command.Flags().GetBool("copy"); doCopy {
		if err := clipboard.WriteAll(transcript); err != nil {
			config.Log.WithField("error", err.Error()).Warn("Clipboard copy failed")
		}
	}

	config.Log.WithFields(map[string]interface{}{
		"segments": len(segments),
		"language": language,
	}).Info("Transcription complete")
}
