package processor

import (
	"sync"

	"github.com/nguyentantai21042004/corpus-flow/internal/analysis"
	"github.com/nguyentantai21042004/corpus-flow/internal/config"
	"github.com/nguyentantai21042004/corpus-flow/internal/corpus"
	"github.com/nguyentantai21042004/corpus-flow/internal/extractor"
	"github.com/nguyentantai21042004/corpus-flow/internal/logger"
	"github.com/nguyentantai21042004/corpus-flow/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	builder    corpus.Builder
	summarizer summarizer.Summarizer
	logger     logger.Logger

	// Detector construction is expensive; built once on first use.
	detectorOnce sync.Once
	detector     analysis.LanguageDetector
}

// New creates a new Processor instance. The summarizer may be nil when
// summaries are disabled.
func New(cfg *config.Config, ext extractor.Extractor, builder corpus.Builder, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		extractor:  ext,
		builder:    builder,
		summarizer: sum,
		logger:     log,
	}
}
