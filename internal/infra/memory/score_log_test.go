package memory

import (
	"context"
	"testing"

	"icebreaker-quiz-service/internal/domain"
)

func TestScoreLogAppendsInOrder(t *testing.T) {
	log := NewScoreLog()

	records := []domain.ScoreRecord{
		{Username: "alice", Topic: domain.TopicSports, Score: 5},
		{Username: "bob", Topic: domain.TopicAgility, Score: 8},
	}
	for _, r := range records {
		if err := log.Append(context.Background(), r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	loaded, err := log.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Username != "alice" || loaded[1].Username != "bob" {
		t.Fatalf("expected append order preserved, got %+v", loaded)
	}

	// Load returns a copy; mutating it must not touch the log.
	loaded[0].Score = 99
	again, _ := log.Load(context.Background())
	if again[0].Score != 5 {
		t.Fatalf("log mutated through loaded slice")
	}
}
