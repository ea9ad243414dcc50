package memory

import (
	"context"
	"testing"
	"time"

	"icebreaker-quiz-service/internal/app"
	"icebreaker-quiz-service/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	session := newStoredSession(t, store)

	if _, ok := store.Get(session.ID()); !ok {
		t.Fatalf("expected session present")
	}

	store.Delete(session.ID())
	if _, ok := store.Get(session.ID()); ok {
		t.Fatalf("expected session removed")
	}
}

// newStoredSession starts a session through the service so the store sees a
// fully initialized one.
func newStoredSession(t *testing.T, store app.SessionRepository) *app.Session {
	t.Helper()
	loader, err := NewStaticQuestionLoader(sampleQuestions())
	if err != nil {
		t.Fatalf("static loader: %v", err)
	}
	service := app.NewSessionService(store, NewQuestionBank(loader, time.Minute), noopSink{}, app.NewClockScheduler(), 0, 0)
	session, err := service.Start(context.Background(), "alice", "sports")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(session.Close)
	return session
}

type noopSink struct{}

func (noopSink) RecordScore(context.Context, domain.ScoreRecord) error { return nil }
