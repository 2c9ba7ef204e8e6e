package analysis

import (
	"regexp"
	"strings"
)

var (
	// Unicode-aware word runs: letters, digits, underscore.
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	// One or more sentence-ending punctuation marks.
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// tokenizeWords extracts the word tokens of the lower-cased text, in order.
func tokenizeWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// splitSentences splits the original-case text on runs of '.', '!' and '?',
// trims each segment and drops empty ones.
func splitSentences(text string) []string {
	var sentences []string
	for _, segment := range sentencePattern.Split(text, -1) {
		if s := strings.TrimSpace(segment); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// countWords is the per-sentence word count; only the count matters here so
// the sentence is not lower-cased first.
func countWords(sentence string) int {
	return len(wordPattern.FindAllString(sentence, -1))
}
