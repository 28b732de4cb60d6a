package processor

import (
	"github.com/ngocvu0811/study-flow/internal/config"
	"github.com/ngocvu0811/study-flow/internal/engine"
	"github.com/ngocvu0811/study-flow/internal/logger"
	"github.com/ngocvu0811/study-flow/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	engine   *engine.Engine
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, eng *engine.Engine, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		engine:   eng,
		executor: exec,
		logger:   log,
	}
}
