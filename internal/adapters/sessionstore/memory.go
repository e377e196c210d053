package sessionstore

import (
	"context"
	"sync"

	"github.com/larriantoniy/ig_user_client/internal/ports"
)

// MemoryStore is used when no Redis address is configured; sessions live for one process run.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]string)}
}

var _ ports.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Save(ctx context.Context, account string, cookies []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(cookies) == 0 {
		delete(s.sessions, account)
		return nil
	}
	s.sessions[account] = append([]string(nil), cookies...)
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, account string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sessions[account]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return append([]string(nil), c...), nil
}

func (s *MemoryStore) Delete(ctx context.Context, account string) error {
	s.mu.Lock()
	delete(s.sessions, account)
	s.mu.Unlock()
	return nil
}
