package server

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/tabs/pkg/protocol"
)

// SessionManager tracks open sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex

	maxSessions int
	metrics     *Metrics
	logger      *slog.Logger
}

// NewSessionManager creates a manager. maxSessions of zero means unlimited.
func NewSessionManager(maxSessions int, metrics *Metrics, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		metrics:     metrics,
		logger:      logger,
	}
}

// Add registers a session and arranges for its removal when it closes.
func (sm *SessionManager) Add(s *Session) error {
	sm.mu.Lock()
	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		sm.mu.Unlock()
		return ErrMaxSessionsReached
	}
	sm.sessions[s.ID] = s
	sm.mu.Unlock()

	sm.metrics.sessionOpened()
	s.onClose = sm.remove
	sm.logger.Info("session created", "session_id", s.ID)
	return nil
}

func (sm *SessionManager) remove(s *Session) {
	sm.mu.Lock()
	_, ok := sm.sessions[s.ID]
	delete(sm.sessions, s.ID)
	sm.mu.Unlock()

	if ok {
		sm.metrics.sessionClosed()
	}
}

// Get returns a session by ID.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Count returns the number of open sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Full reports whether the session limit is reached.
func (sm *SessionManager) Full() bool {
	return sm.maxSessions > 0 && sm.Count() >= sm.maxSessions
}

// Shutdown notifies and closes every session.
func (sm *SessionManager) Shutdown() {
	sm.mu.RLock()
	open := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		open = append(open, s)
	}
	sm.mu.RUnlock()

	for _, s := range open {
		s.SendClose(protocol.CloseServerShutdown, "server shutting down")
		s.Close()
	}
	sm.logger.Info("sessions closed", "count", len(open))
}
