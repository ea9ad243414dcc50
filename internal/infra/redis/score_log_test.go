package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"icebreaker-quiz-service/internal/domain"
)

func TestScoreLogRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	log := NewScoreLog(newClient(mr))

	records := []domain.ScoreRecord{
		{Username: "alice", Topic: domain.TopicSports, Score: 5},
		{Username: "bob", Topic: domain.TopicGeneral, Score: 8},
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
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}
	if loaded[0].Username != "alice" || loaded[1].Username != "bob" {
		t.Fatalf("append order not preserved: %+v", loaded)
	}
	if loaded[1].Topic != domain.TopicGeneral || loaded[1].Score != 8 {
		t.Fatalf("record fields lost: %+v", loaded[1])
	}
}

func TestScoreLogEmpty(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	log := NewScoreLog(newClient(mr))
	loaded, err := log.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty log, got %d", len(loaded))
	}
}
