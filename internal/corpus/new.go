package corpus

import (
	"github.com/nguyentantai21042004/corpus-flow/internal/logger"
)

type implBuilder struct {
	logger logger.Logger
}

// New creates a new Builder instance
func New(log logger.Logger) Builder {
	return &implBuilder{logger: log}
}
