package queue

import (
	"log/slog"

	"github.com/samber/do"
)

const bufferSize = 64

var _ do.Shutdownable = (*Service)(nil)

// Service buffers incoming utterances between producers (stdin, speech
// transcripts) and the engine consumer, keeping turn processing serial.
type Service struct {
	queue chan Turn
}

type Turn struct {
	SessionID string
	Text      string
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		queue: make(chan Turn, bufferSize),
	}, nil
}

// Add enqueues an utterance, dropping it when the buffer is full.
func (s *Service) Add(sessionID, text string) {
	defer func() {
		// a producer may race Shutdown; a dropped line is fine then
		_ = recover()
	}()

	select {
	case s.queue <- Turn{SessionID: sessionID, Text: text}:
	default:
		slog.Warn("utterance queue is full", "session_id", sessionID)
	}
}

func (s *Service) Channel() <-chan Turn {
	return s.queue
}

func (s *Service) Shutdown() error {
	close(s.queue)

	return nil
}
