package analysis

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// UnknownLanguage is the bucket for sentences the classifier cannot place.
const UnknownLanguage = "unknown"

// LanguageDetector classifies a text's language. lingua.LanguageDetector
// satisfies this interface; tests substitute a fake.
type LanguageDetector interface {
	DetectLanguageOf(text string) (lingua.Language, bool)
}

// NewDetector builds a detector over all spoken languages. Construction is
// expensive, so callers should build it once and reuse it.
func NewDetector() LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().FromAllSpokenLanguages().Build()
}

// DetectLanguages classifies each sentence independently and aggregates
// counts per lower-cased ISO 639-1 code. A sentence the detector cannot
// classify lands in the "unknown" bucket instead of aborting the pass.
// Results on short sentences are approximate, not authoritative.
func (a *Analyzer) DetectLanguages(detector LanguageDetector) map[string]int {
	counts := make(map[string]int)
	for _, sentence := range a.sentences {
		lang, ok := detector.DetectLanguageOf(sentence)
		if !ok {
			counts[UnknownLanguage]++
			continue
		}
		counts[strings.ToLower(lang.IsoCode639_1().String())]++
	}
	return counts
}
