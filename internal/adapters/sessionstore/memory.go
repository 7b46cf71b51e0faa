package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/utils"
)

// sessionIDBytes gives 128 bits of entropy per session cookie value.
const sessionIDBytes = 16

// MemoryStore is an in-memory TTL session store. Expired sessions are dropped
// lazily on Get and swept periodically in the background.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a memory session store with the given TTL and starts
// its sweep goroutine. Call Stop on shutdown.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Ensure MemoryStore implements the SessionStore port
var _ portssvc.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Create(ctx context.Context, userID string) (*domain.Session, error) {
	id, err := utils.GenerateSecureRandomString(sessionIDBytes)
	if err != nil {
		return nil, err
	}
	session := domain.Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return &session, nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if session.Expired(time.Now()) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	return &session, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// Stop terminates the sweep goroutine.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, session := range s.sessions {
				if session.Expired(now) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
