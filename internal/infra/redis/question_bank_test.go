package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"icebreaker-quiz-service/internal/domain"
	"icebreaker-quiz-service/internal/infra/memory"
)

func TestQuestionBankCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	static, err := memory.NewStaticQuestionLoader(sampleQuestions())
	if err != nil {
		t.Fatalf("static loader: %v", err)
	}
	loader := &countingLoader{QuestionLoader: static}
	bank := NewQuestionBank(client, loader, time.Minute)

	questions, err := bank.GetQuestions(context.Background(), domain.TopicSports)
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 sports questions, got %d", len(questions))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("quiz:questions:sports") {
		t.Fatalf("expected cache key in redis")
	}

	// Second call should hit the Redis cache, loader not incremented.
	cached, err := bank.GetQuestions(context.Background(), domain.TopicSports)
	if err != nil {
		t.Fatalf("get questions 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	// The cached form keeps everything a session needs, including the
	// correctness flags and explanations.
	if cached[0].CorrectChoice() == "" || cached[0].Explanation == "" {
		t.Fatalf("cache dropped question content: %+v", cached[0])
	}
}

type countingLoader struct {
	memory.QuestionLoader
	calls int
}

func (l *countingLoader) LoadQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	l.calls++
	return l.QuestionLoader.LoadQuestions(ctx, topic)
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			Prompt:      "q1",
			Topic:       domain.TopicSports,
			Choices:     []domain.Choice{{Text: "a", Correct: true}, {Text: "b"}},
			Explanation: "a is right",
		},
		{
			Prompt:      "q2",
			Topic:       domain.TopicSports,
			Choices:     []domain.Choice{{Text: "a"}, {Text: "b", Correct: true}},
			Explanation: "b is right",
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
