package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"icebreaker-quiz-service/internal/domain"
)

func TestQuestionBankCaches(t *testing.T) {
	static, err := NewStaticQuestionLoader(sampleQuestions())
	if err != nil {
		t.Fatalf("static loader: %v", err)
	}
	loader := &countingLoader{QuestionLoader: static}
	bank := NewQuestionBank(loader, time.Minute)

	questions, err := bank.GetQuestions(context.Background(), domain.TopicSports)
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 sports questions, got %d", len(questions))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := bank.GetQuestions(context.Background(), domain.TopicSports); err != nil {
		t.Fatalf("get questions 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}

	// A different topic misses the cache.
	if _, err := bank.GetQuestions(context.Background(), domain.TopicAgility); err != nil {
		t.Fatalf("get agility questions: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected second load, got %d", loader.calls)
	}
}

func TestStaticLoaderNormalizesLegacyTopics(t *testing.T) {
	loader, err := NewStaticQuestionLoader([]domain.Question{
		{
			Prompt:  "p",
			Topic:   "generalCulture",
			Choices: []domain.Choice{{Text: "a", Correct: true}, {Text: "b"}},
		},
	})
	if err != nil {
		t.Fatalf("static loader: %v", err)
	}
	questions, err := loader.LoadQuestions(context.Background(), domain.TopicGeneral)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 1 || questions[0].Topic != domain.TopicGeneral {
		t.Fatalf("expected normalized general question, got %+v", questions)
	}
}

func TestStaticLoaderRejectsMalformedQuestions(t *testing.T) {
	_, err := NewStaticQuestionLoader([]domain.Question{
		{
			Prompt:  "no correct choice",
			Topic:   domain.TopicSports,
			Choices: []domain.Choice{{Text: "a"}, {Text: "b"}},
		},
	})
	if !errors.Is(err, domain.ErrInvalidQuestion) {
		t.Fatalf("expected invalid question error, got %v", err)
	}

	_, err = NewStaticQuestionLoader([]domain.Question{
		{
			Prompt:  "bad topic",
			Topic:   "geography",
			Choices: []domain.Choice{{Text: "a", Correct: true}, {Text: "b"}},
		},
	})
	if !errors.Is(err, domain.ErrUnknownTopic) {
		t.Fatalf("expected unknown topic error, got %v", err)
	}
}

type countingLoader struct {
	QuestionLoader
	calls int
}

func (l *countingLoader) LoadQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	l.calls++
	return l.QuestionLoader.LoadQuestions(ctx, topic)
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			Prompt:  "q1",
			Topic:   domain.TopicSports,
			Choices: []domain.Choice{{Text: "a", Correct: true}, {Text: "b"}},
		},
		{
			Prompt:  "q2",
			Topic:   domain.TopicSports,
			Choices: []domain.Choice{{Text: "a"}, {Text: "b", Correct: true}},
		},
		{
			Prompt:  "q3",
			Topic:   domain.TopicAgility,
			Choices: []domain.Choice{{Text: "a", Correct: true}, {Text: "b"}},
		},
	}
}
