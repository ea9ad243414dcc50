package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"icebreaker-quiz-service/internal/app"
	"icebreaker-quiz-service/internal/domain"
	"icebreaker-quiz-service/internal/i18n"
)

type WSHandler struct {
	sessions *app.SessionService
	upgrader websocket.Upgrader
}

func NewWSHandler(sessions *app.SessionService) *WSHandler {
	return &WSHandler{
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Choice string `json:"choice"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message   string `json:"message"`
	Recovered bool   `json:"recovered"`
}

type completedPayload struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// ServeWS upgrades the request and drives one quiz attempt over the socket:
// a question is pushed immediately, then timeUpdated/answerResult/question/
// completed events as the attempt progresses. Disconnecting before
// completion discards the attempt without recording a score.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	topic := r.URL.Query().Get("topic")
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = i18n.DefaultLanguage
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.sessions.Start(r.Context(), username, topic)
	if err != nil {
		// Recoverable: the client is expected to return to topic selection.
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{
			Message:   localizeError(lang, err),
			Recovered: true,
		}})
		return
	}

	events, cancel := session.Subscribe()
	defer cancel()
	defer func() {
		if session.IsCompleted() {
			h.sessions.Release(session.ID())
		} else {
			h.sessions.Teardown(session.ID())
		}
	}()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				select {
				case send <- translateEvent(lang, event):
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	question, err := session.CurrentQuestion()
	if err == nil {
		send <- outboundMessage[any]{Type: "question", Payload: question}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid select payload"}}
				continue
			}
			if err := session.SelectAnswer(payload.Choice); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: localizeError(lang, err)}}
			}
		case "submit":
			if _, err := session.SubmitAnswer(); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: localizeError(lang, err)}}
			}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

func translateEvent(lang string, event domain.SessionEvent) outboundMessage[any] {
	switch event.Type {
	case domain.EventQuestionChanged:
		return outboundMessage[any]{Type: "question", Payload: event.Question}
	case domain.EventTimeUpdated:
		return outboundMessage[any]{Type: "timeUpdated", Payload: map[string]int{"remainingSeconds": event.RemainingSeconds}}
	case domain.EventAnswered:
		return outboundMessage[any]{Type: "answerResult", Payload: event.Answer}
	case domain.EventCompleted:
		return outboundMessage[any]{Type: "completed", Payload: completedPayload{
			Score:   event.FinalScore,
			Message: i18n.Translate(lang, "quiz.complete"),
		}}
	default:
		return outboundMessage[any]{Type: string(event.Type)}
	}
}

// localizeError maps user-facing domain errors to translated messages;
// everything else passes through verbatim.
func localizeError(lang string, err error) string {
	switch {
	case errors.Is(err, domain.ErrAnswerRequired):
		return i18n.Translate(lang, "quiz.selectAnswer")
	case errors.Is(err, domain.ErrNoQuestionsAvailable):
		return i18n.Translate(lang, "quiz.noQuestions")
	case errors.Is(err, domain.ErrUsernameRequired):
		return i18n.Translate(lang, "enter.username")
	case errors.Is(err, domain.ErrUnknownTopic):
		return i18n.Translate(lang, "select.theme")
	default:
		return err.Error()
	}
}
