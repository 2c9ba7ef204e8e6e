package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
)

// BasicStats computes the count and moment statistics. Sentence-length
// moments use the population standard deviation. The mean, median and
// standard deviation are rounded to 2 decimal places and the type-token
// ratio to 4, matching the rendered report precision.
func (a *Analyzer) BasicStats() Stats {
	st := Stats{
		TotalWords:     len(a.words),
		TotalSentences: len(a.sentences),
	}

	distinct := make(map[string]struct{}, len(a.words))
	for _, w := range a.words {
		distinct[w] = struct{}{}
	}
	st.UniqueWords = len(distinct)

	if st.TotalWords > 0 {
		st.TypeTokenRatio = roundTo(float64(st.UniqueWords)/float64(st.TotalWords), 4)
	}

	lengths := make([]float64, 0, len(a.sentences))
	for _, s := range a.sentences {
		lengths = append(lengths, float64(countWords(s)))
	}

	// Zero sentences: the moments stay at the zero sentinel.
	if len(lengths) > 0 {
		mean, _ := stats.Mean(lengths)
		median, _ := stats.Median(lengths)
		std, _ := stats.StandardDeviationPopulation(lengths)

		st.AverageSentenceLength = roundTo(mean, 2)
		st.MedianSentenceLength = roundTo(median, 2)
		st.SentenceLengthStd = roundTo(std, 2)
	}

	return st
}

func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
