package theme

import "sync"

// HistoryLimit caps the number of generated themes kept in memory.
const HistoryLimit = 10

// Store holds the active theme, the immutable presets and the capped list of
// recently generated themes. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	active  Theme
	presets []Theme
	history []Theme
}

// NewStore creates a store whose active theme is the first preset.
func NewStore(presets []Theme) *Store {
	s := &Store{
		presets: append([]Theme(nil), presets...),
		history: make([]Theme, 0, HistoryLimit),
	}
	if len(presets) > 0 {
		s.active = presets[0]
	}
	return s
}

// SetActive replaces the active theme. History is not touched.
func (s *Store) SetActive(t Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = t
}

// RecordGenerated prepends t to history and drops entries past the limit.
func (s *Store) RecordGenerated(t Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Theme, 0, HistoryLimit)
	next = append(next, t)
	next = append(next, s.history...)
	if len(next) > HistoryLimit {
		next = next[:HistoryLimit]
	}
	s.history = next
}

// Active returns the active theme.
func (s *Store) Active() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// History returns a copy of the generated themes, most recent first.
func (s *Store) History() []Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Theme(nil), s.history...)
}

// Presets returns a copy of the preset themes.
func (s *Store) Presets() []Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Theme(nil), s.presets...)
}

// Lookup finds a theme by id among the presets, then the history.
func (s *Store) Lookup(id string) (Theme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.presets {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range s.history {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
