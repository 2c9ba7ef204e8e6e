// Package analysis computes descriptive statistics over a text corpus:
// word and sentence counts, lexical diversity, sentence-length moments and
// distribution, ranked word frequencies and best-effort language counts.
// Identical input text always yields an identical report.
package analysis

import "sort"

// Analyzer holds the token sequences derived from one text blob. The token
// view is recomputed per analysis and never persisted.
type Analyzer struct {
	raw       string
	words     []string
	sentences []string
}

// Stats is the basic-statistics block of a corpus report. When the input has
// zero sentences (or zero words) the dependent fields are a zero sentinel
// rather than a fault.
type Stats struct {
	TotalWords            int
	UniqueWords           int
	TotalSentences        int
	AverageSentenceLength float64
	MedianSentenceLength  float64
	SentenceLengthStd     float64
	TypeTokenRatio        float64
}

// WordCount is one entry of the ranked word-frequency table.
type WordCount struct {
	Word  string
	Count int
}

// New tokenizes the text blob into its word and sentence sequences.
func New(text string) *Analyzer {
	return &Analyzer{
		raw:       text,
		words:     tokenizeWords(text),
		sentences: splitSentences(text),
	}
}

// Sentences returns the sentence segments in document order.
func (a *Analyzer) Sentences() []string {
	return a.sentences
}

// WordFrequency returns the topN most frequent word tokens, ranked by
// descending count with ties broken by order of first appearance. A topN of
// zero or less defaults to 20.
func (a *Analyzer) WordFrequency(topN int) []WordCount {
	if topN <= 0 {
		topN = 20
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range a.words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]WordCount, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// SentenceLengthDistribution maps each occurring sentence word-count to the
// number of sentences of that length. Lengths that never occur are absent.
func (a *Analyzer) SentenceLengthDistribution() map[int]int {
	dist := make(map[int]int)
	for _, s := range a.sentences {
		dist[countWords(s)]++
	}
	return dist
}
