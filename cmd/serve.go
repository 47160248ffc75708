package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clipscribe/config"
	"clipscribe/handlers"
	"clipscribe/internal/worker"
	"clipscribe/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription web UI and API",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(command *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.InitLogger(cfg.Debug)

	acquirer, adapter := newPipeline(cfg)

	dispatcher := worker.NewDispatcher(cfg.Worker.Count, cfg.Worker.QueueSize, config.Log)
	defer dispatcher.Stop()

	h := handlers.NewApplicationHandler(config.Log, acquirer, adapter, dispatcher, cfg.KeyPoints.Interval)

	app, err := server.New(h, config.Log)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		config.Log.Info("Shutting down")
		_ = app.Shutdown()
	}()

	config.Log.WithField("addr", cfg.Server.Addr).Info("Starting clipscribe server")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
