package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"icebreaker-quiz-service/internal/domain"
)

// QuestionRepository loads the question set for a topic (from cache or a
// backing store).
type QuestionRepository interface {
	GetQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error)
}

// SessionRepository abstracts how active sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// ScoreSink is the ranking aggregator's ingestion point; a completing
// session emits exactly one record into it.
type ScoreSink interface {
	RecordScore(ctx context.Context, record domain.ScoreRecord) error
}

// SessionService contains the quiz attempt use cases.
type SessionService struct {
	sessions  SessionRepository
	questions QuestionRepository
	scores    ScoreSink
	scheduler Scheduler

	timeLimit    time.Duration
	advanceDelay time.Duration

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// DefaultTimeLimit mirrors the original nine-minute countdown.
const DefaultTimeLimit = 540 * time.Second

// DefaultAdvanceDelay is the correctness-reveal window before the next
// question is shown.
const DefaultAdvanceDelay = 2500 * time.Millisecond

func NewSessionService(sessions SessionRepository, questions QuestionRepository, scores ScoreSink, scheduler Scheduler, timeLimit, advanceDelay time.Duration) *SessionService {
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	if advanceDelay < 0 {
		advanceDelay = DefaultAdvanceDelay
	}
	return &SessionService{
		sessions:     sessions,
		questions:    questions,
		scores:       scores,
		scheduler:    scheduler,
		timeLimit:    timeLimit,
		advanceDelay: advanceDelay,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start validates the request, draws and shuffles the topic's questions, and
// begins the countdown. The returned session is already ticking.
func (s *SessionService) Start(ctx context.Context, username, rawTopic string) (*Session, error) {
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	topic, err := domain.ParseTopic(rawTopic)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.GetQuestions(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestionsAvailable
	}

	session := &Session{
		id:           uuid.NewString(),
		username:     username,
		topic:        topic,
		state:        domain.StateInProgress,
		questions:    s.shuffle(questions),
		remaining:    int(s.timeLimit / time.Second),
		subscribers:  make(map[chan domain.SessionEvent]struct{}),
		now:          time.Now,
		scheduler:    s.scheduler,
		advanceDelay: s.advanceDelay,
		sink:         s.scores,
	}
	session.stopTick = s.scheduler.Every(time.Second, session.tick)

	s.sessions.Put(session)
	return session, nil
}

// Get resolves an active session by ID.
func (s *SessionService) Get(sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Teardown discards a session without recording a score; any pending
// scheduled callbacks are cancelled.
func (s *SessionService) Teardown(sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Close()
	s.sessions.Delete(sessionID)
}

// Release drops a finished session from the repository.
func (s *SessionService) Release(sessionID string) {
	s.sessions.Delete(sessionID)
}

// shuffle returns a copy of questions in uniform random order, each with its
// choices independently shuffled, so repeated attempts never see answers in
// fixed positions.
func (s *SessionService) shuffle(questions []domain.Question) []domain.Question {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()

	shuffled := make([]domain.Question, len(questions))
	copy(shuffled, questions)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for i := range shuffled {
		choices := make([]domain.Choice, len(shuffled[i].Choices))
		copy(choices, shuffled[i].Choices)
		s.rnd.Shuffle(len(choices), func(a, b int) {
			choices[a], choices[b] = choices[b], choices[a]
		})
		shuffled[i].Choices = choices
	}
	return shuffled
}
