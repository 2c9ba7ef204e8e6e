package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/corpus-flow/internal/config"
	"github.com/nguyentantai21042004/corpus-flow/internal/corpus"
	"github.com/nguyentantai21042004/corpus-flow/internal/extractor"
	"github.com/nguyentantai21042004/corpus-flow/internal/logger"
	"github.com/nguyentantai21042004/corpus-flow/internal/processor"
	"github.com/nguyentantai21042004/corpus-flow/internal/summarizer"
	"github.com/nguyentantai21042004/corpus-flow/pkg/executor"
)

// app wires the configured services for one command invocation.
type app struct {
	cfg       *config.Config
	log       logger.Logger
	extractor extractor.Extractor
	builder   corpus.Builder
	processor processor.Processor
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()
	ext := extractor.New(cfg, exec, log)
	builder := corpus.New(log)

	var sum summarizer.Summarizer
	if cfg.Summary.Enabled {
		sum = summarizer.New(cfg.Summary.APIKeys, cfg.Summary.Model, log)
	}

	a := &app{
		cfg:       cfg,
		log:       log,
		extractor: ext,
		builder:   builder,
		processor: processor.New(cfg, ext, builder, sum, log),
	}

	if err := a.ensureDirectories(); err != nil {
		return nil, err
	}
	return a, nil
}

// ensureDirectories creates the configured directories if they don't exist
func (a *app) ensureDirectories() error {
	dirs := []string{
		a.cfg.Paths.Subtitles,
		filepath.Dir(a.cfg.Paths.Corpus),
		a.cfg.Paths.Reports,
	}
	if a.cfg.Paths.Videos != "" {
		dirs = append(dirs, a.cfg.Paths.Videos)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
