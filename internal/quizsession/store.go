package quizsession

import (
	"sync"
	"time"

	"github.com/Sanesh764/quiz-c/internal/aiquiz"
	"github.com/google/uuid"
)

// Store guarda as sessões vivas. A implementação em memória é a única
// prevista: perder tudo em um restart faz parte do contrato.
type Store interface {
	Create(d aiquiz.Difficulty, questions []aiquiz.Question) *Session
	Get(id string) (*Session, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (m *memoryStore) Create(d aiquiz.Difficulty, questions []aiquiz.Question) *Session {
	session := newSession(uuid.NewString(), d, questions)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()
	m.sessions[session.ID] = session
	return session
}

func (m *memoryStore) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// evictExpired remove sessões mais antigas que o TTL. Chamado com o lock
// de escrita já adquirido, a cada criação; mantém o mapa limitado sem
// precisar de goroutine de limpeza.
func (m *memoryStore) evictExpired() {
	if m.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-m.ttl)
	for id, session := range m.sessions {
		if session.StartTime.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
