package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"icebreaker-quiz-service/internal/domain"
)

// QuestionLoader fetches the question set for a topic from a backing store
// (e.g., Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error)
}

// QuestionBank caches per-topic question sets with TTL to avoid repeated
// store hits.
type QuestionBank struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[domain.Topic]cachedQuestions
}

type cachedQuestions struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewQuestionBank(loader QuestionLoader, ttl time.Duration) *QuestionBank {
	return &QuestionBank{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[domain.Topic]cachedQuestions),
	}
}

func (b *QuestionBank) GetQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	now := b.clock()

	b.mu.RLock()
	if entry, ok := b.cache[topic]; ok && entry.expiresAt.After(now) {
		b.mu.RUnlock()
		return entry.questions, nil
	}
	b.mu.RUnlock()

	result, err, _ := b.sf.Do(string(topic), func() (interface{}, error) {
		now := b.clock()
		b.mu.RLock()
		if entry, ok := b.cache[topic]; ok && entry.expiresAt.After(now) {
			b.mu.RUnlock()
			return entry.questions, nil
		}
		b.mu.RUnlock()

		questions, err := b.loader.LoadQuestions(ctx, topic)
		if err != nil {
			return nil, err
		}

		b.mu.Lock()
		b.cache[topic] = cachedQuestions{
			questions: questions,
			expiresAt: now.Add(b.ttlWithJitter()),
		}
		b.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (b *QuestionBank) ttlWithJitter() time.Duration {
	if b.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(b.ttl) / 10
	return b.ttl + time.Duration(b.rnd.Int63n(jitterMax+1))
}

// StaticQuestionLoader serves a fixed question list from memory, validating
// and normalizing topics up front so content bugs surface at startup rather
// than as silently-wrong scoring.
type StaticQuestionLoader struct {
	byTopic map[domain.Topic][]domain.Question
}

func NewStaticQuestionLoader(questions []domain.Question) (*StaticQuestionLoader, error) {
	byTopic := make(map[domain.Topic][]domain.Question)
	for _, q := range questions {
		topic, err := domain.ParseTopic(string(q.Topic))
		if err != nil {
			return nil, err
		}
		q.Topic = topic
		if err := q.Validate(); err != nil {
			return nil, err
		}
		byTopic[topic] = append(byTopic[topic], q)
	}
	return &StaticQuestionLoader{byTopic: byTopic}, nil
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context, topic domain.Topic) ([]domain.Question, error) {
	return l.byTopic[topic], nil
}
