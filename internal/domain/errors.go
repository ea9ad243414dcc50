package domain

import "errors"

var (
	// ErrUsernameRequired is returned when a session is started without a username.
	ErrUsernameRequired = errors.New("username is required")
	// ErrUnknownTopic is returned when a topic string is not in the known set.
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrNoQuestionsAvailable is returned when a topic filter matches no questions.
	ErrNoQuestionsAvailable = errors.New("no questions available for topic")
	// ErrAnswerRequired is returned when an answer is submitted with no choice selected.
	ErrAnswerRequired = errors.New("an answer must be selected first")
	// ErrNoActiveQuestion is returned when a choice is selected after the current question was scored.
	ErrNoActiveQuestion = errors.New("no active question")
	// ErrSessionClosed is returned when an operation reaches a completed session.
	ErrSessionClosed = errors.New("quiz session is closed")
	// ErrSessionNotFound is returned when a session ID does not resolve.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrChoiceNotFound indicates a selected choice is not part of the current question.
	ErrChoiceNotFound = errors.New("choice not found")
	// ErrInvalidQuestion indicates a question failed load-time validation.
	ErrInvalidQuestion = errors.New("invalid question")
)
