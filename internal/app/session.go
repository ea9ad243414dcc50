package app

import (
	"context"
	"log"
	"sync"
	"time"

	"icebreaker-quiz-service/internal/domain"
)

// Session drives a single user's timed quiz attempt. All mutation happens
// under mu, in response to user actions arriving through the service and to
// the two scheduled callbacks (countdown tick, deferred advance). Once the
// session completes it emits exactly one ScoreRecord and rejects everything
// else with ErrSessionClosed.
type Session struct {
	id       string
	username string
	topic    domain.Topic

	mu            sync.Mutex
	state         domain.SessionState
	questions     []domain.Question
	currentIndex  int
	remaining     int
	selected      string
	answered      bool
	score         int
	subscribers   map[chan domain.SessionEvent]struct{}
	stopTick      func()
	cancelAdvance func()

	now          func() time.Time
	scheduler    Scheduler
	advanceDelay time.Duration
	sink         ScoreSink
}

// ID returns the generated session identifier.
func (s *Session) ID() string { return s.id }

// Username returns the player who owns this attempt.
func (s *Session) Username() string { return s.username }

// Topic returns the topic the attempt was started for.
func (s *Session) Topic() domain.Topic { return s.topic }

// IsCompleted reports whether the session reached its terminal state.
func (s *Session) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.StateCompleted
}

// Score returns the running score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// CurrentQuestion returns the client-facing view of the active question.
func (s *Session) CurrentQuestion() (domain.QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateCompleted {
		return domain.QuestionView{}, domain.ErrSessionClosed
	}
	return *s.questionViewLocked(), nil
}

// SelectAnswer records a tentative choice. It does not score or advance.
func (s *Session) SelectAnswer(choiceText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateCompleted {
		return domain.ErrSessionClosed
	}
	if s.answered {
		return domain.ErrNoActiveQuestion
	}
	question := s.questions[s.currentIndex]
	for _, c := range question.Choices {
		if c.Text == choiceText {
			s.selected = choiceText
			return nil
		}
	}
	return domain.ErrChoiceNotFound
}

// SubmitAnswer scores the selected choice, surfaces the result, and
// schedules the advance to the next question after the presentation delay.
func (s *Session) SubmitAnswer() (domain.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateCompleted {
		return domain.AnswerResult{}, domain.ErrSessionClosed
	}
	if s.answered {
		return domain.AnswerResult{}, domain.ErrNoActiveQuestion
	}
	if s.selected == "" {
		return domain.AnswerResult{}, domain.ErrAnswerRequired
	}

	question := s.questions[s.currentIndex]
	correct := false
	for _, c := range question.Choices {
		if c.Text == s.selected && c.Correct {
			correct = true
			break
		}
	}
	if correct {
		s.score++
	}
	s.answered = true

	result := domain.AnswerResult{
		Correct:       correct,
		Explanation:   question.Explanation,
		CorrectChoice: question.CorrectChoice(),
		Score:         s.score,
	}
	s.broadcastLocked(domain.SessionEvent{Type: domain.EventAnswered, Answer: &result})

	// The UI shows the correctness reveal during this window; the advance is
	// cancellable so teardown never mutates a discarded session.
	s.cancelAdvance = s.scheduler.After(s.advanceDelay, s.advance)
	return result, nil
}

// advance moves to the next question or completes the session after the
// presentation delay elapses.
func (s *Session) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateCompleted || !s.answered {
		return
	}
	s.cancelAdvance = nil
	if s.currentIndex+1 < len(s.questions) {
		s.currentIndex++
		s.selected = ""
		s.answered = false
		s.broadcastLocked(domain.SessionEvent{Type: domain.EventQuestionChanged, Question: s.questionViewLocked()})
		return
	}
	s.completeLocked()
}

// tick runs once per elapsed second while the session is active.
func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateCompleted {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	s.broadcastLocked(domain.SessionEvent{Type: domain.EventTimeUpdated, RemainingSeconds: s.remaining})
	if s.remaining == 0 {
		s.completeLocked()
	}
}

// completeLocked is the single terminal transition: it runs for either the
// last-question submission or the countdown expiring, whichever comes first,
// and never twice.
func (s *Session) completeLocked() {
	if s.state == domain.StateCompleted {
		return
	}
	s.state = domain.StateCompleted
	s.cancelTasksLocked()

	record := domain.ScoreRecord{
		Username:   s.username,
		Topic:      s.topic,
		Score:      s.score,
		RecordedAt: s.now(),
	}
	if err := s.sink.RecordScore(context.Background(), record); err != nil {
		log.Printf("record score for %s: %v", s.username, err)
	}
	s.broadcastLocked(domain.SessionEvent{Type: domain.EventCompleted, FinalScore: s.score})
	s.closeSubscribersLocked()
}

// Close tears the session down without recording a score. Outstanding
// scheduled callbacks are cancelled so they cannot fire on a stale session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateCompleted {
		return
	}
	s.state = domain.StateCompleted
	s.cancelTasksLocked()
	s.closeSubscribersLocked()
}

func (s *Session) cancelTasksLocked() {
	if s.stopTick != nil {
		s.stopTick()
		s.stopTick = nil
	}
	if s.cancelAdvance != nil {
		s.cancelAdvance()
		s.cancelAdvance = nil
	}
}

// Subscribe returns a channel of session events plus a cancel function.
func (s *Session) Subscribe() (<-chan domain.SessionEvent, func()) {
	ch := make(chan domain.SessionEvent, 16)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked(event domain.SessionEvent) {
	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			// Drop the oldest update rather than block the session on a
			// slow consumer.
			select {
			case <-ch:
			default:
			}
			ch <- event
		}
	}
}

func (s *Session) closeSubscribersLocked() {
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Session) questionViewLocked() *domain.QuestionView {
	question := s.questions[s.currentIndex]
	choices := make([]string, 0, len(question.Choices))
	for _, c := range question.Choices {
		choices = append(choices, c.Text)
	}
	return &domain.QuestionView{
		Index:   s.currentIndex,
		Total:   len(s.questions),
		Prompt:  question.Prompt,
		Choices: choices,
	}
}
