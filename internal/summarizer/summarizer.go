package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are a corpus linguist. Below is a deduplicated corpus of subtitle lines
extracted from a set of videos. Write a concise markdown overview of it.

Requirements:
- Start with a one-sentence characterization of the material
- List the dominant topics and recurring themes
- Note anything striking about register, vocabulary or language mix
- Use markdown headings and bullet points

Corpus:
---
%s
---`

// Summarize reads the merged corpus, asks Gemini for an overview and writes
// it as corpus_summary.md into destDir. Returns the written path.
func (s *implSummarizer) Summarize(ctx context.Context, corpusPath, destDir string) (string, error) {
	content, err := os.ReadFile(corpusPath)
	if err != nil {
		return "", fmt.Errorf("read corpus: %w", err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Summarizing corpus: %s", corpusPath)

	summary, err := s.callGemini(ctx, string(content))
	if err != nil {
		return "", fmt.Errorf("summarize corpus: %w", err)
	}

	md := fmt.Sprintf("# Corpus Summary\n\n_%s_\n\n%s\n",
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	mdPath := filepath.Join(destDir, "corpus_summary.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "Summary written to: %s", mdPath)
	return mdPath, nil
}

// callGemini sends the corpus to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, corpus string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, corpus)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
