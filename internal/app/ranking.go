package app

import (
	"context"
	"sort"
	"time"

	"icebreaker-quiz-service/internal/domain"
)

// ScoreLog is the persisted append-only record of completed attempts.
// Append is the only mutation it ever receives.
type ScoreLog interface {
	Append(ctx context.Context, record domain.ScoreRecord) error
	Load(ctx context.Context) ([]domain.ScoreRecord, error)
}

// RankingService derives the leaderboard from the score log. The log stays
// small in this domain, so the board is recomputed from the full log on
// every read instead of keeping incremental state.
type RankingService struct {
	log ScoreLog
	now func() time.Time
}

func NewRankingService(log ScoreLog) *RankingService {
	return &RankingService{log: log, now: time.Now}
}

// RecordScore appends a completed attempt to the log.
func (r *RankingService) RecordScore(ctx context.Context, record domain.ScoreRecord) error {
	return r.log.Append(ctx, record)
}

// Leaderboard computes the deduplicated, sorted board: one entry per
// username holding that user's best score, ranked positionally, each tagged
// with a trend against the board's mean score.
func (r *RankingService) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	records, err := r.log.Load(ctx)
	if err != nil {
		return domain.Leaderboard{}, err
	}

	board := domain.Leaderboard{
		Entries:   bestPerUser(records),
		UpdatedAt: r.now(),
	}
	if len(board.Entries) == 0 {
		return board, nil
	}

	// Stable sort keeps insertion order for equal scores, so on a tie the
	// earlier submission ranks higher.
	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].Score > board.Entries[j].Score
	})

	total := 0
	for _, entry := range board.Entries {
		total += entry.Score
	}
	mean := float64(total) / float64(len(board.Entries))

	for i := range board.Entries {
		board.Entries[i].Rank = i + 1
		if float64(board.Entries[i].Score) > mean {
			board.Entries[i].Trend = domain.TrendAboveAverage
		} else {
			board.Entries[i].Trend = domain.TrendAtOrBelowAverage
		}
	}
	return board, nil
}

// bestPerUser collapses the log to each user's maximum score. Ties keep the
// first-achieved record, and entries appear in first-seen order.
func bestPerUser(records []domain.ScoreRecord) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(records))
	index := make(map[string]int)
	for _, record := range records {
		if i, ok := index[record.Username]; ok {
			if record.Score > entries[i].Score {
				entries[i].Score = record.Score
				entries[i].Topic = record.Topic
			}
			continue
		}
		index[record.Username] = len(entries)
		entries = append(entries, domain.LeaderboardEntry{
			Username: record.Username,
			Topic:    record.Topic,
			Score:    record.Score,
		})
	}
	return entries
}
