// Package report renders corpus statistics as plain text and as a .docx
// document.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/corpus-flow/internal/analysis"
)

// Data is everything one rendered report needs.
type Data struct {
	GeneratedAt        time.Time
	Stats              analysis.Stats
	TopWords           []analysis.WordCount
	LengthDistribution map[int]int
	// Languages is nil when language detection is disabled. Counts are
	// approximate, especially for short sentences.
	Languages map[string]int
}

// Render produces the full plain-text report: header, basic statistics,
// top-N word frequencies, sentence-length distribution and, when present,
// detected languages.
func Render(d Data) string {
	var sb strings.Builder

	sb.WriteString("=== Corpus Analysis Report ===\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", d.GeneratedAt.Format("2006-01-02 15:04:05")))

	sb.WriteString("\n=== Basic Statistics ===\n")
	sb.WriteString(renderTable([2]string{"Metric", "Value"}, basicRows(d.Stats)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("\n=== Top %d Most Frequent Words ===\n", len(d.TopWords)))
	sb.WriteString(renderTable([2]string{"Word", "Count"}, wordRows(d.TopWords)))
	sb.WriteString("\n")

	sb.WriteString("\n=== Sentence Length Distribution ===\n")
	sb.WriteString(renderTable([2]string{"Length (words)", "Sentences"}, lengthRows(d.LengthDistribution)))
	sb.WriteString("\n")

	if len(d.Languages) > 0 {
		sb.WriteString("\n=== Detected Languages (approximate) ===\n")
		sb.WriteString(renderTable([2]string{"Language", "Sentences"}, languageRows(d.Languages)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func basicRows(st analysis.Stats) [][2]string {
	return [][2]string{
		{"Total Words", strconv.Itoa(st.TotalWords)},
		{"Unique Words", strconv.Itoa(st.UniqueWords)},
		{"Total Sentences", strconv.Itoa(st.TotalSentences)},
		{"Average Sentence Length", formatFloat(st.AverageSentenceLength, 2)},
		{"Median Sentence Length", formatFloat(st.MedianSentenceLength, 2)},
		{"Sentence Length Std Dev", formatFloat(st.SentenceLengthStd, 2)},
		{"Type-Token Ratio", formatFloat(st.TypeTokenRatio, 4)},
	}
}

func wordRows(words []analysis.WordCount) [][2]string {
	rows := make([][2]string, 0, len(words))
	for _, wc := range words {
		rows = append(rows, [2]string{wc.Word, strconv.Itoa(wc.Count)})
	}
	return rows
}

func lengthRows(dist map[int]int) [][2]string {
	lengths := make([]int, 0, len(dist))
	for length := range dist {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	rows := make([][2]string, 0, len(lengths))
	for _, length := range lengths {
		rows = append(rows, [2]string{strconv.Itoa(length), strconv.Itoa(dist[length])})
	}
	return rows
}

// languageRows orders by descending count, then code, so output is stable.
func languageRows(langs map[string]int) [][2]string {
	codes := make([]string, 0, len(langs))
	for code := range langs {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if langs[codes[i]] != langs[codes[j]] {
			return langs[codes[i]] > langs[codes[j]]
		}
		return codes[i] < codes[j]
	})

	rows := make([][2]string, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, [2]string{code, strconv.Itoa(langs[code])})
	}
	return rows
}

func formatFloat(x float64, places int) string {
	return strconv.FormatFloat(x, 'f', places, 64)
}
