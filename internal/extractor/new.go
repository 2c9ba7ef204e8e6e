package extractor

import (
	"github.com/nguyentantai21042004/corpus-flow/internal/config"
	"github.com/nguyentantai21042004/corpus-flow/internal/logger"
	"github.com/nguyentantai21042004/corpus-flow/pkg/executor"
)

type implExtractor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
