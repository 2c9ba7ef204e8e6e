package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/corpus-flow/internal/analysis"
	"github.com/nguyentantai21042004/corpus-flow/internal/report"
)

// Analyze reads a text file, computes the statistics report, prints it and
// persists it under the reports directory.
func (p *implProcessor) Analyze(ctx context.Context, textPath string) error {
	data, err := os.ReadFile(textPath)
	if err != nil {
		return fmt.Errorf("read text %s: %w", textPath, err)
	}

	analyzer := analysis.New(string(data))

	rd := report.Data{
		GeneratedAt:        time.Now(),
		Stats:              analyzer.BasicStats(),
		TopWords:           analyzer.WordFrequency(p.cfg.Analysis.TopWords),
		LengthDistribution: analyzer.SentenceLengthDistribution(),
	}

	if p.cfg.Analysis.DetectLanguages {
		p.logger.Debug(ctx, "Detecting per-sentence languages (approximate)")
		rd.Languages = analyzer.DetectLanguages(p.languageDetector())
	}

	rendered := report.Render(rd)
	fmt.Println(rendered)

	if err := os.MkdirAll(p.cfg.Paths.Reports, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	txtPath := filepath.Join(p.cfg.Paths.Reports, "corpus_report.txt")
	if err := os.WriteFile(txtPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	p.logger.Info(ctx, "Report written to: %s", txtPath)

	if p.cfg.Analysis.DocxReport {
		docxPath := filepath.Join(p.cfg.Paths.Reports, "corpus_report.docx")
		if err := report.WriteDocx(rd, docxPath); err != nil {
			return fmt.Errorf("write docx report: %w", err)
		}
		p.logger.Info(ctx, "Docx report written to: %s", docxPath)
	}

	return nil
}

func (p *implProcessor) languageDetector() analysis.LanguageDetector {
	p.detectorOnce.Do(func() {
		p.detector = analysis.NewDetector()
	})
	return p.detector
}
