package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type WhisperConfig struct {
	URL      string        `mapstructure:"url"`
	Model    string        `mapstructure:"model"`
	BeamSize int           `mapstructure:"beam_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type MediaConfig struct {
	TmpDir      string `mapstructure:"tmp_dir"`
	YtdlpPath   string `mapstructure:"ytdlp_path"`
	FfprobePath string `mapstructure:"ffprobe_path"`
}

type KeyPointConfig struct {
	Interval float64 `mapstructure:"interval"`
}

type WorkerConfig struct {
	Count     int `mapstructure:"count"`
	QueueSize int `mapstructure:"queue_size"`
}

type Settings struct {
	Server    ServerConfig   `mapstructure:"server"`
	Whisper   WhisperConfig  `mapstructure:"whisper"`
	Media     MediaConfig    `mapstructure:"media"`
	KeyPoints KeyPointConfig `mapstructure:"keypoints"`
	Worker    WorkerConfig   `mapstructure:"worker"`
	Debug     bool           `mapstructure:"debug"`
}

// Load reads settings from an optional config.yaml in the working directory,
// with CLIPSCRIBE_* environment variables taking precedence over the file
// and defaults filling everything else.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("whisper.url", "http://localhost:9000")
	v.SetDefault("whisper.model", "base")
	v.SetDefault("whisper.beam_size", 5)
	v.SetDefault("whisper.timeout", 10*time.Minute)
	v.SetDefault("media.tmp_dir", os.TempDir())
	v.SetDefault("media.ytdlp_path", "yt-dlp")
	v.SetDefault("media.ffprobe_path", "ffprobe")
	v.SetDefault("keypoints.interval", 30.0)
	v.SetDefault("worker.count", 1)
	v.SetDefault("worker.queue_size", 8)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("CLIPSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// The file is optional; anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &settings, nil
}
