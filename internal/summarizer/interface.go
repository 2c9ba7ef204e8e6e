package summarizer

import "context"

// Summarizer produces an LLM-generated markdown overview of the merged
// corpus. Best-effort: it is optional and never blocks the statistics run.
type Summarizer interface {
	Summarize(ctx context.Context, corpusPath, destDir string) (string, error)
}
