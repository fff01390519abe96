package store

import "sync"

// Memory is an in-process Store used in tests and when running without a
// database.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

func (s *Memory) Load(name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[name]
	return v, ok, nil
}

func (s *Memory) Save(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[name] = value
	return nil
}

func (s *Memory) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, name)
	return nil
}
