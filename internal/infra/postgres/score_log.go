package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"icebreaker-quiz-service/internal/domain"
)

// ScoreLog persists score records in an insert-only table; the serial key
// preserves append order for the ranking aggregator.
type ScoreLog struct {
	pool *pgxpool.Pool
}

func NewScoreLog(pool *pgxpool.Pool) *ScoreLog {
	return &ScoreLog{pool: pool}
}

func (l *ScoreLog) Append(ctx context.Context, record domain.ScoreRecord) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO score_log (username, topic, score, recorded_at) VALUES ($1, $2, $3, $4)`,
		record.Username, string(record.Topic), record.Score, record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("append score record: %w", err)
	}
	return nil
}

func (l *ScoreLog) Load(ctx context.Context) ([]domain.ScoreRecord, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT username, topic, score, recorded_at FROM score_log ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load score log: %w", err)
	}
	defer rows.Close()

	var records []domain.ScoreRecord
	for rows.Next() {
		var record domain.ScoreRecord
		var topic string
		if err := rows.Scan(&record.Username, &topic, &record.Score, &record.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan score record: %w", err)
		}
		record.Topic = domain.Topic(topic)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load score log: %w", err)
	}
	return records, nil
}
