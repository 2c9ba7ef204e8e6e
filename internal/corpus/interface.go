package corpus

import "context"

// Builder merges parsed subtitle files into a single deduplicated corpus.
type Builder interface {
	Build(ctx context.Context, inputDir, outputPath string) (*Result, error)
}

// Result describes one corpus build.
type Result struct {
	FilesFound  int
	FilesFailed int
	UniqueTexts int
	OutputPath  string
	// Written is false when no subtitle files were found; no artifact is
	// produced in that case.
	Written bool
}
