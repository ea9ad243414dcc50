package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"icebreaker-quiz-service/internal/domain"
)

// QuestionLoader fetches the question set for a topic from a backing store
// (e.g., Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error)
}

// QuestionBank caches per-topic question sets in Redis and falls back to a
// loader on cache miss. The full question JSON is cached (prompts, choices,
// explanations) because sessions render all of it, stored as:
// SET quiz:questions:{topic} {json array} EX ttl
type QuestionBank struct {
	client *redis.Client
	loader QuestionLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuestionBank(client *redis.Client, loader QuestionLoader, ttl time.Duration) *QuestionBank {
	return &QuestionBank{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *QuestionBank) GetQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	key := b.key(topic)

	if cached, err := b.client.Get(ctx, key).Bytes(); err == nil {
		if questions, err := decodeQuestions(cached); err == nil {
			return questions, nil
		}
	}

	result, err, _ := b.sf.Do(string(topic), func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if cached, err := b.client.Get(ctx, key).Bytes(); err == nil {
			if questions, err := decodeQuestions(cached); err == nil {
				return questions, nil
			}
		}

		questions, err := b.loader.LoadQuestions(ctx, topic)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(questions); err == nil {
			// best-effort cache fill
			_ = b.client.Set(ctx, key, data, b.ttlWithJitter()).Err()
		}
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (b *QuestionBank) key(topic domain.Topic) string {
	return "quiz:questions:" + string(topic)
}

func decodeQuestions(data []byte) ([]domain.Question, error) {
	var questions []domain.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (b *QuestionBank) ttlWithJitter() time.Duration {
	if b.ttl <= 0 {
		return 0
	}
	jitterMax := int64(b.ttl) / 10
	return b.ttl + time.Duration(b.rnd.Int63n(jitterMax+1))
}
