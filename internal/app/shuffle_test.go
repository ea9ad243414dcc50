package app

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"icebreaker-quiz-service/internal/domain"
)

func TestShuffleIsAPermutation(t *testing.T) {
	service := NewSessionService(nil, nil, nil, NewClockScheduler(), 0, 0)

	questions := make([]domain.Question, 10)
	for i := range questions {
		questions[i] = domain.Question{
			Prompt: fmt.Sprintf("q%d", i),
			Topic:  domain.TopicSports,
			Choices: []domain.Choice{
				{Text: fmt.Sprintf("q%d-a", i), Correct: true},
				{Text: fmt.Sprintf("q%d-b", i)},
				{Text: fmt.Sprintf("q%d-c", i)},
			},
		}
	}

	shuffled := service.shuffle(questions)
	if len(shuffled) != len(questions) {
		t.Fatalf("expected %d questions, got %d", len(questions), len(shuffled))
	}

	if prompts(questions) != prompts(shuffled) {
		t.Fatalf("shuffle changed the question multiset")
	}
	for _, q := range shuffled {
		original := questions[0]
		for _, cand := range questions {
			if cand.Prompt == q.Prompt {
				original = cand
				break
			}
		}
		if choiceSet(original) != choiceSet(q) {
			t.Fatalf("shuffle changed the choice multiset for %s", q.Prompt)
		}
	}

	// Input must be left untouched; sessions shuffle copies.
	for i, q := range questions {
		if q.Prompt != fmt.Sprintf("q%d", i) {
			t.Fatalf("input question order mutated")
		}
	}
}

func prompts(questions []domain.Question) string {
	keys := make([]string, 0, len(questions))
	for _, q := range questions {
		keys = append(keys, q.Prompt)
	}
	sort.Strings(keys)
	return fmt.Sprint(keys)
}

func choiceSet(q domain.Question) string {
	keys := make([]string, 0, len(q.Choices))
	for _, c := range q.Choices {
		keys = append(keys, fmt.Sprintf("%s/%v", c.Text, c.Correct))
	}
	sort.Strings(keys)
	return fmt.Sprint(keys)
}

func TestClockSchedulerEveryAndAfter(t *testing.T) {
	sched := NewClockScheduler()

	ticks := make(chan struct{}, 8)
	stop := sched.Every(10*time.Millisecond, func() { ticks <- struct{}{} })
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatalf("periodic task never fired")
	}
	stop()

	fired := make(chan struct{}, 1)
	cancel := sched.After(5*time.Millisecond, func() { fired <- struct{}{} })
	defer cancel()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("one-shot task never fired")
	}

	cancelled := make(chan struct{}, 1)
	cancel2 := sched.After(50*time.Millisecond, func() { cancelled <- struct{}{} })
	cancel2()
	select {
	case <-cancelled:
		t.Fatalf("cancelled task fired")
	case <-time.After(100 * time.Millisecond):
	}
}
