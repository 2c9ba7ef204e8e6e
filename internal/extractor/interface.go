package extractor

import "context"

// Extractor materializes .srt files from the subtitle streams embedded in
// video containers.
type Extractor interface {
	// ExtractDir processes every video file directly under videoDir and
	// returns the number of .srt files written. Per-video failures are
	// logged and do not abort the run.
	ExtractDir(ctx context.Context, videoDir, outputDir string) (int, error)
	// ExtractFile extracts every subtitle stream of one video and returns
	// the paths of the written .srt files.
	ExtractFile(ctx context.Context, videoPath, outputDir string) ([]string, error)
}
