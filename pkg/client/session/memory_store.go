package session

import "sync"

// MemoryStore keeps the session in process memory. It is used by tests and by
// short-lived tools that do not want a session surviving the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	user  *User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	u := user
	s.user = &u
	return nil
}

func (s *MemoryStore) Load() (string, User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.user == nil {
		s.token = ""
		s.user = nil
		return "", User{}, ErrNoSession
	}
	return s.token, *s.user, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
