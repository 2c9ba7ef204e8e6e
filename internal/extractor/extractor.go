package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var videoExtensions = []string{".mp4", ".mkv", ".mov", ".avi", ".webm", ".m4v"}

// IsVideoFile reports whether the path has a supported video extension.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// ExtractDir extracts the subtitle streams of every video file directly
// under videoDir into outputDir. A video that fails to probe or extract is
// logged and skipped.
func (e *implExtractor) ExtractDir(ctx context.Context, videoDir, outputDir string) (int, error) {
	videos, err := discoverVideoFiles(videoDir)
	if err != nil {
		return 0, fmt.Errorf("discover video files: %w", err)
	}

	e.logger.Info(ctx, "Found %d video files", len(videos))

	written := 0
	for i, videoPath := range videos {
		e.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(videos), filepath.Base(videoPath))

		paths, err := e.ExtractFile(ctx, videoPath, outputDir)
		if err != nil {
			e.logger.Error(ctx, "Failed to extract from %s: %v", videoPath, err)
			continue
		}
		written += len(paths)
	}

	return written, nil
}

// ExtractFile runs one ffmpeg invocation per subtitle stream, forcing SRT
// output. The first stream keeps the video's base name; later streams get a
// language-or-index suffix so no stream overwrites another.
func (e *implExtractor) ExtractFile(ctx context.Context, videoPath, outputDir string) ([]string, error) {
	streams, err := e.probeSubtitleStreams(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	if len(streams) == 0 {
		e.logger.Info(ctx, "No subtitle streams found in %s", filepath.Base(videoPath))
		return nil, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	var written []string
	for i, stream := range streams {
		outputPath := filepath.Join(outputDir, srtName(base, stream, i))

		args := []string{
			"-i", videoPath,
			"-map", fmt.Sprintf("0:%d", stream.Index),
			"-f", "srt",
			"-y",
			outputPath,
		}

		if _, err := e.executor.Execute(ctx, e.cfg.FFmpeg.FFmpegPath, args...); err != nil {
			e.logger.Error(ctx, "Failed to extract stream %d of %s: %v", stream.Index, videoPath, err)
			continue
		}

		e.logger.Info(ctx, "Extracted subtitles to: %s", filepath.Base(outputPath))
		written = append(written, outputPath)
	}

	return written, nil
}

// srtName keeps the plain base name for the first stream and disambiguates
// later ones by language tag, falling back to the stream index.
func srtName(base string, stream probeStream, position int) string {
	if position == 0 {
		return base + ".srt"
	}
	suffix := stream.Tags.Language
	if suffix == "" {
		suffix = strconv.Itoa(stream.Index)
	}
	return base + "." + suffix + ".srt"
}

// discoverVideoFiles lists the supported video files directly under dir,
// sorted by name.
func discoverVideoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsVideoFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
