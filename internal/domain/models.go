package domain

import (
	"fmt"
	"time"
)

// Choice is a possible answer; correctness is a flag on the choice itself.
type Choice struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question models an MCQ question tagged with a topic.
type Question struct {
	Prompt      string   `json:"prompt"`
	Topic       Topic    `json:"topic"`
	Choices     []Choice `json:"choices"`
	Explanation string   `json:"explanation"`
}

// Validate rejects content bugs at load time: a question needs at least two
// choices and at least one flagged correct, otherwise every answer would
// silently score as wrong.
func (q Question) Validate() error {
	if len(q.Choices) < 2 {
		return fmt.Errorf("%w: %q has %d choices, need at least 2", ErrInvalidQuestion, q.Prompt, len(q.Choices))
	}
	for _, c := range q.Choices {
		if c.Correct {
			return nil
		}
	}
	return fmt.Errorf("%w: %q has no correct choice", ErrInvalidQuestion, q.Prompt)
}

// CorrectChoice returns the text of the first correct choice.
func (q Question) CorrectChoice() string {
	for _, c := range q.Choices {
		if c.Correct {
			return c.Text
		}
	}
	return ""
}

// ScoreRecord is one completed attempt, appended to the score log.
type ScoreRecord struct {
	Username   string    `json:"username"`
	Topic      Topic     `json:"topic"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Trend marks how a leaderboard entry compares to the board's mean score.
type Trend string

const (
	TrendAboveAverage     Trend = "above-average"
	TrendAtOrBelowAverage Trend = "at-or-below-average"
)

// LeaderboardEntry is one user's best result. Rank is positional.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Topic    Topic  `json:"topic"`
	Score    int    `json:"score"`
	Trend    Trend  `json:"trend"`
}

// Leaderboard is the derived, deduplicated view over the score log.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// SessionState tracks a session through its lifecycle.
type SessionState string

const (
	StateInProgress SessionState = "in-progress"
	StateCompleted  SessionState = "completed"
)

// AnswerResult is surfaced to the UI after scoring a submission; it is
// transient display data, not session state.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
	CorrectChoice string `json:"correctChoice"`
	Score         int    `json:"score"`
}

// QuestionView is the client-facing form of a question: choice order as
// shuffled for this session, correctness flags stripped.
type QuestionView struct {
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// SessionEventType enumerates lifecycle notifications pushed to clients.
type SessionEventType string

const (
	EventQuestionChanged SessionEventType = "questionChanged"
	EventTimeUpdated     SessionEventType = "timeUpdated"
	EventAnswered        SessionEventType = "answered"
	EventCompleted       SessionEventType = "completed"
)

// SessionEvent is one lifecycle notification. Only the fields relevant to
// the event type are populated.
type SessionEvent struct {
	Type             SessionEventType `json:"type"`
	Question         *QuestionView    `json:"question,omitempty"`
	RemainingSeconds int              `json:"remainingSeconds,omitempty"`
	Answer           *AnswerResult    `json:"answer,omitempty"`
	FinalScore       int              `json:"finalScore,omitempty"`
}
