package config

import "fmt"

type Config struct {
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Summary     SummaryConfig     `yaml:"summary"`
}

type FFmpegConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

type PathsConfig struct {
	Videos    string `yaml:"videos"`
	Subtitles string `yaml:"subtitles"`
	Corpus    string `yaml:"corpus"`
	Reports   string `yaml:"reports"`
}

type AnalysisConfig struct {
	TopWords        int  `yaml:"top_words"`
	DetectLanguages bool `yaml:"detect_languages"`
	DocxReport      bool `yaml:"docx_report"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type SummaryConfig struct {
	Enabled bool     `yaml:"enabled"`
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

func (c *Config) Validate() error {
	if c.Paths.Subtitles == "" {
		return fmt.Errorf("paths.subtitles is required")
	}
	if c.Summary.Enabled && len(c.Summary.APIKeys) == 0 {
		return fmt.Errorf("summary.api_keys is required when summary is enabled")
	}

	if c.FFmpeg.FFmpegPath == "" {
		c.FFmpeg.FFmpegPath = "ffmpeg"
	}
	if c.FFmpeg.FFprobePath == "" {
		c.FFmpeg.FFprobePath = "ffprobe"
	}
	if c.Paths.Corpus == "" {
		c.Paths.Corpus = "data/corpus/combined_subtitles.txt"
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "data/reports"
	}
	if c.Analysis.TopWords == 0 {
		c.Analysis.TopWords = 10
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}

	return nil
}
