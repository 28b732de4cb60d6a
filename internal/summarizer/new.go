package summarizer

import (
	"sync"

	"github.com/ngocvu0811/study-flow/internal/logger"
)

type implSummarizer struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// Concurrent file handlers share one Summarizer, so the rotation
	// cursor needs the lock.
	mu         sync.Mutex
	currentKey int
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// activeKey returns the index and value of the key the next request should use.
func (s *implSummarizer) activeKey() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
