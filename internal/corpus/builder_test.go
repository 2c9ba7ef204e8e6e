package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/corpus-flow/internal/logger"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "combined.txt")

	// b.srt repeats a line from a.srt; lexicographic order makes a.srt win.
	writeFile(t, inputDir, "a.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nHello world\n\n2\n00:00:03,000 --> 00:00:04,000\nSecond line\n\n")
	writeFile(t, inputDir, "b.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nHello world\n\n2\n00:00:03,000 --> 00:00:04,000\nThird line\n\n")
	writeFile(t, inputDir, "notes.txt", "not a subtitle file\n")

	b := New(logger.New("error"))
	result, err := b.Build(ctx, inputDir, outputPath)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.FilesFound != 2 {
		t.Errorf("FilesFound = %d, want 2", result.FilesFound)
	}
	if result.UniqueTexts != 3 {
		t.Errorf("UniqueTexts = %d, want 3", result.UniqueTexts)
	}
	if !result.Written {
		t.Error("Written = false, want true")
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	want := "Hello world\nSecond line\nThird line\n"
	if string(data) != want {
		t.Errorf("corpus = %q, want %q", string(data), want)
	}
}

func TestBuildIdempotent(t *testing.T) {
	ctx := context.Background()
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "combined.txt")

	writeFile(t, inputDir, "a.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nHello world\n\n")

	b := New(logger.New("error"))

	if _, err := b.Build(ctx, inputDir, outputPath); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	first, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.Build(ctx, inputDir, outputPath); err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	second, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("Build() not idempotent: %q vs %q", first, second)
	}
}

func TestBuildNoFiles(t *testing.T) {
	ctx := context.Background()
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "combined.txt")

	b := New(logger.New("error"))
	result, err := b.Build(ctx, inputDir, outputPath)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.FilesFound != 0 {
		t.Errorf("FilesFound = %d, want 0", result.FilesFound)
	}
	if result.Written {
		t.Error("Written = true, want false")
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("corpus artifact should not be written when no files are found")
	}
}

func TestBuildUnreadableFileContinues(t *testing.T) {
	ctx := context.Background()
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "combined.txt")

	writeFile(t, inputDir, "a.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nGood entry\n\n")
	// A dangling symlink triggers a read failure for that entry.
	if err := os.Symlink(filepath.Join(inputDir, "missing"), filepath.Join(inputDir, "bad.srt")); err != nil {
		t.Fatal(err)
	}

	b := New(logger.New("error"))
	result, err := b.Build(ctx, inputDir, outputPath)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.UniqueTexts != 1 {
		t.Errorf("UniqueTexts = %d, want 1", result.UniqueTexts)
	}
	if !result.Written {
		t.Error("Written = false, want true")
	}
}

func TestDiscoverSRTFilesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.srt", "a.srt", "b.SRT"} {
		writeFile(t, dir, name, "")
	}

	files, err := discoverSRTFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 3 {
		t.Fatalf("len(files) = %d, want 3", len(files))
	}
	for i, want := range []string{"a.srt", "b.SRT", "c.srt"} {
		if filepath.Base(files[i]) != want {
			t.Errorf("files[%d] = %s, want %s", i, filepath.Base(files[i]), want)
		}
	}
}
