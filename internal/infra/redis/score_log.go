package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"icebreaker-quiz-service/internal/domain"
)

// scoreLogKey is the single well-known list holding the append-only log.
const scoreLogKey = "quiz:scores"

// ScoreLog persists score records as a Redis list. RPUSH is atomic on the
// server, so concurrent appenders (multiple service instances) cannot lose
// records to a read-modify-write race.
type ScoreLog struct {
	client *redis.Client
}

func NewScoreLog(client *redis.Client) *ScoreLog {
	return &ScoreLog{client: client}
}

func (l *ScoreLog) Append(ctx context.Context, record domain.ScoreRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal score record: %w", err)
	}
	if err := l.client.RPush(ctx, scoreLogKey, data).Err(); err != nil {
		return fmt.Errorf("append score record: %w", err)
	}
	return nil
}

func (l *ScoreLog) Load(ctx context.Context) ([]domain.ScoreRecord, error) {
	raw, err := l.client.LRange(ctx, scoreLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load score log: %w", err)
	}
	records := make([]domain.ScoreRecord, 0, len(raw))
	for _, item := range raw {
		var record domain.ScoreRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("decode score record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
