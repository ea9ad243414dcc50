package memory

import (
	"context"
	"sync"

	"icebreaker-quiz-service/internal/domain"
)

// ScoreLog is an in-memory append-only implementation of app.ScoreLog,
// useful for tests and Redis-less deployments.
type ScoreLog struct {
	mu      sync.RWMutex
	records []domain.ScoreRecord
}

func NewScoreLog() *ScoreLog {
	return &ScoreLog{}
}

func (l *ScoreLog) Append(_ context.Context, record domain.ScoreRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return nil
}

func (l *ScoreLog) Load(_ context.Context) ([]domain.ScoreRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	records := make([]domain.ScoreRecord, len(l.records))
	copy(records, l.records)
	return records, nil
}
