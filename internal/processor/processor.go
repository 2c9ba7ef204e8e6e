package processor

import (
	"context"
	"fmt"
	"time"
)

// Run orchestrates the entire corpus pipeline
func (p *implProcessor) Run(ctx context.Context) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting corpus pipeline")
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract subtitles from videos, when a videos dir is configured
	if p.cfg.Paths.Videos != "" {
		written, err := p.extractor.ExtractDir(ctx, p.cfg.Paths.Videos, p.cfg.Paths.Subtitles)
		if err != nil {
			return fmt.Errorf("extract subtitles: %w", err)
		}
		p.logger.Info(ctx, "Extracted %d subtitle files", written)
	}

	// Steps 2-4: corpus build, analysis, optional summary
	if err := p.rebuild(ctx); err != nil {
		return err
	}

	p.logger.Info(ctx, "Pipeline completed in %s", time.Since(startTime))
	return nil
}

// ProcessVideo handles one video dropped into the watched directory: extract
// its subtitle streams, then rebuild the corpus and report.
func (p *implProcessor) ProcessVideo(ctx context.Context, videoPath string) error {
	p.logger.Info(ctx, "Processing video: %s", videoPath)

	written, err := p.extractor.ExtractFile(ctx, videoPath, p.cfg.Paths.Subtitles)
	if err != nil {
		return fmt.Errorf("extract subtitles: %w", err)
	}
	if len(written) == 0 {
		p.logger.Info(ctx, "Nothing extracted from %s, corpus unchanged", videoPath)
		return nil
	}

	return p.rebuild(ctx)
}

// rebuild merges the subtitle directory into the corpus artifact and, when
// anything was written, analyzes and optionally summarizes it.
func (p *implProcessor) rebuild(ctx context.Context) error {
	result, err := p.builder.Build(ctx, p.cfg.Paths.Subtitles, p.cfg.Paths.Corpus)
	if err != nil {
		return fmt.Errorf("build corpus: %w", err)
	}
	if !result.Written {
		// Nothing to analyze; the builder already reported the empty set.
		return nil
	}

	if err := p.Analyze(ctx, p.cfg.Paths.Corpus); err != nil {
		return fmt.Errorf("analyze corpus: %w", err)
	}

	if p.cfg.Summary.Enabled && p.summarizer != nil {
		if _, err := p.summarizer.Summarize(ctx, p.cfg.Paths.Corpus, p.cfg.Paths.Reports); err != nil {
			// The summary is best-effort and never fails the run.
			p.logger.Warn(ctx, "Corpus summary failed: %v", err)
		}
	}

	return nil
}
