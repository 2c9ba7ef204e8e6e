package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/corpus-flow/internal/subtitle"
)

// Build parses every .srt file under inputDir (lexicographic filename order,
// so output is reproducible), merges the cleaned blocks with first-seen
// deduplication, and writes the corpus one text per line to outputPath.
// A file that cannot be read contributes zero blocks and the build continues.
// When no subtitle files are found, no artifact is written and Result.Written
// is false; that outcome is not an error.
func (b *implBuilder) Build(ctx context.Context, inputDir, outputPath string) (*Result, error) {
	files, err := discoverSRTFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover SRT files: %w", err)
	}

	result := &Result{FilesFound: len(files), OutputPath: outputPath}

	if len(files) == 0 {
		b.logger.Info(ctx, "No SRT files found in %s", inputDir)
		return result, nil
	}

	b.logger.Info(ctx, "Found %d SRT files", len(files))

	sequences := make([][]string, 0, len(files))
	for _, path := range files {
		b.logger.Debug(ctx, "Processing: %s", filepath.Base(path))

		data, err := os.ReadFile(path)
		if err != nil {
			b.logger.Error(ctx, "Failed to read %s: %v", path, err)
			result.FilesFailed++
			continue
		}

		sequences = append(sequences, subtitle.Parse(string(data)))
	}

	unique := Merge(sequences...)
	result.UniqueTexts = len(unique)

	if err := writeCorpus(outputPath, unique); err != nil {
		return nil, fmt.Errorf("write corpus: %w", err)
	}
	result.Written = true

	b.logger.Info(ctx, "Total unique subtitles extracted: %d", len(unique))
	b.logger.Info(ctx, "Corpus written to: %s", outputPath)

	return result, nil
}

// writeCorpus persists each entry as its own newline-terminated line.
func writeCorpus(path string, entries []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create corpus dir: %w", err)
		}
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// discoverSRTFiles lists the .srt files directly under dir, sorted by name.
func discoverSRTFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".srt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
