package session

import (
	"log/slog"
	"sync"

	"mosambot/app/service/dialogue"

	"github.com/oklog/ulid/v2"
	"github.com/samber/do"
)

// Service is the registry of live conversations. Each conversation gets
// its own dialogue context; nothing survives a process restart.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*dialogue.Context
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		sessions: make(map[string]*dialogue.Context),
	}, nil
}

// Create registers a fresh conversation and returns its id.
func (s *Service) Create() (string, *dialogue.Context) {
	id := ulid.Make().String()
	conv := &dialogue.Context{}

	s.mu.Lock()
	s.sessions[id] = conv
	s.mu.Unlock()

	slog.Debug("Session created", "session_id", id)

	return id, conv
}

func (s *Service) Get(id string) (*dialogue.Context, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[id]
	return conv, ok
}

// GetOrCreate resolves an id to its conversation, creating a new one for
// empty or unknown ids. The returned id is the one the caller should use
// on the next turn.
func (s *Service) GetOrCreate(id string) (string, *dialogue.Context) {
	if id != "" {
		if conv, ok := s.Get(id); ok {
			return id, conv
		}
	}

	return s.Create()
}

func (s *Service) Remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	slog.Debug("Session removed", "session_id", id)
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
