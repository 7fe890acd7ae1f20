package game

import "github.com/google/uuid"

// Session holds the statistics that outlive a single game.
// It is handed to NewGame and read back with Game.Session.
type Session struct {
	// ID tags log lines for one process run
	ID uuid.UUID

	HighScore int
	MaxLevel  int
}

// NewSession creates an empty session record with a fresh ID
func NewSession() Session {
	return Session{ID: uuid.New()}
}

// RecordScore raises the high score if score beats it
func (s *Session) RecordScore(score int) bool {
	if score > s.HighScore {
		s.HighScore = score
		return true
	}
	return false
}

// RecordLevel raises the max level if level beats it
func (s *Session) RecordLevel(level int) bool {
	if level > s.MaxLevel {
		s.MaxLevel = level
		return true
	}
	return false
}
