package processor

import "context"

// Processor orchestrates the corpus pipeline: subtitle extraction, corpus
// build, analysis and reporting.
type Processor interface {
	// Run executes the full batch: extract (when a videos dir is
	// configured), build the corpus, analyze it, render reports and
	// optionally summarize.
	Run(ctx context.Context) error
	// Analyze computes and renders the statistics report for one text file.
	Analyze(ctx context.Context, textPath string) error
	// ProcessVideo extracts one video's subtitles and rebuilds the corpus
	// and report; used as the watch-mode handler.
	ProcessVideo(ctx context.Context, videoPath string) error
}
