package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/internal/session"
)

// SessionRegistry holds the live capture sessions, one per scanner station.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session.CaptureSession
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[uuid.UUID]*session.CaptureSession)}
}

func (r *SessionRegistry) Start(actor string) *session.CaptureSession {
	s := session.New(actor)
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	return s
}

func (r *SessionRegistry) Get(id uuid.UUID) (*session.CaptureSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *SessionRegistry) Remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
