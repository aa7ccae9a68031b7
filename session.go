package persona

import "sync"

// Session tracks the active persona for one logical client session. The
// active persona is the implicit target of questions that don't name one.
// It lives in memory only and is never persisted; every operation that
// changed it must be repeated in a new session.
//
// The zero value is ready to use. Session is safe for concurrent use.
type Session struct {
	// ID identifies the session in logs. Optional.
	ID string

	mu     sync.Mutex
	active string
}

// SetActive makes name the session's active persona. The name is stored
// normalized.
func (s *Session) SetActive(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = NormalizeName(name)
}

// Active returns the active persona's normalized name.
// ok is false if no persona has been activated in this session.
func (s *Session) Active() (name string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != ""
}

// Clear removes the active persona.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ""
}
