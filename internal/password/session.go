package password

import (
	"errors"
	"sync"
)

// HistorySize is the default number of entries kept in history.
const HistorySize = 10

// ErrNotFound is returned when an entry id is unknown to the session.
var ErrNotFound = errors.New("entry not found")

// Session keeps recently generated passwords and favorites in memory. It is
// safe for concurrent use. Nothing is persisted.
type Session struct {
	mu        sync.Mutex
	limit     int
	history   []Entry
	favorites []Entry
}

// NewSession creates a session keeping up to limit history entries. A
// non-positive limit uses HistorySize.
func NewSession(limit int) *Session {
	if limit <= 0 {
		limit = HistorySize
	}
	return &Session{limit: limit}
}

// Record adds an entry to the front of history, evicting the oldest.
func (s *Session) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]Entry{e}, s.history...)
	if len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}
}

// History returns entries newest first.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.history...)
}

// Favorites returns favorited entries, most recently added first.
func (s *Session) Favorites() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.favorites...)
}

// IsFavorite reports whether id is a favorite.
func (s *Session) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.favorites, id) >= 0
}

// ToggleFavorite adds e to favorites or removes it if already present. It
// returns true when e is a favorite afterwards.
func (s *Session) ToggleFavorite(e Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.favorites, e.ID); i >= 0 {
		s.favorites = append(s.favorites[:i:i], s.favorites[i+1:]...)
		return false
	}
	s.favorites = append([]Entry{e}, s.favorites...)
	return true
}

// Unfavorite removes the favorite with the given id.
func (s *Session) Unfavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.favorites, id)
	if i < 0 {
		return ErrNotFound
	}
	s.favorites = append(s.favorites[:i:i], s.favorites[i+1:]...)
	return nil
}

// Clear drops history; favorites are kept.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
