package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Subtitles: "data/subtitles",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing subtitles path",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "summary enabled without api keys",
			config: Config{
				Paths: PathsConfig{
					Subtitles: "data/subtitles",
				},
				Summary: SummaryConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Subtitles: "data/subtitles"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.FFmpeg.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %v, want ffmpeg", cfg.FFmpeg.FFmpegPath)
	}
	if cfg.FFmpeg.FFprobePath != "ffprobe" {
		t.Errorf("FFprobePath = %v, want ffprobe", cfg.FFmpeg.FFprobePath)
	}
	if cfg.Paths.Corpus != "data/corpus/combined_subtitles.txt" {
		t.Errorf("Corpus = %v, want default", cfg.Paths.Corpus)
	}
	if cfg.Analysis.TopWords != 10 {
		t.Errorf("TopWords = %v, want 10", cfg.Analysis.TopWords)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
ffmpeg:
  ffmpeg_path: "/usr/local/bin/ffmpeg"

paths:
  videos: "data/videos"
  subtitles: "data/subtitles"
  corpus: "data/corpus/combined.txt"

analysis:
  top_words: 15
  detect_languages: true

logging:
  level: "debug"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FFmpeg.FFmpegPath != "/usr/local/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %v, want /usr/local/bin/ffmpeg", cfg.FFmpeg.FFmpegPath)
	}
	if cfg.Paths.Subtitles != "data/subtitles" {
		t.Errorf("Subtitles = %v, want data/subtitles", cfg.Paths.Subtitles)
	}
	if cfg.Analysis.TopWords != 15 {
		t.Errorf("TopWords = %v, want 15", cfg.Analysis.TopWords)
	}
	if !cfg.Analysis.DetectLanguages {
		t.Error("DetectLanguages = false, want true")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
