package entity

import (
	"sync"
	"time"

	"seat-map/internal/seatmap"
)

// Session is one live seat map. Callers must hold the session lock while
// touching Map or LastSeenAt.
type Session struct {
	BaseSimple
	Layout     string
	Map        *seatmap.SeatMap
	LastSeenAt time.Time

	mu sync.Mutex
}

func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Touch records activity on the session.
func (s *Session) Touch(now time.Time) {
	s.LastSeenAt = now
}

// IdleSince reports how long the session has been unused at now.
func (s *Session) IdleSince(now time.Time) time.Duration {
	return now.Sub(s.LastSeenAt)
}
