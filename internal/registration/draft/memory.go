package draft

import (
	"context"
	"encoding/json"
	"sync"

	"promohub/pkg/platform/sentinel"
)

// MemoryStore is an in-memory draft store. It is the fallback when no Redis
// instance is configured and the default for unit tests.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Save(_ context.Context, sessionID, stepKey string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make(json.RawMessage, len(data))
	copy(cp, data)
	s.drafts[draftKey(sessionID, stepKey)] = cp
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID, stepKey string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.drafts[draftKey(sessionID, stepKey)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := make(json.RawMessage, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string, stepKeys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range stepKeys {
		delete(s.drafts, draftKey(sessionID, key))
	}
	return nil
}

func draftKey(sessionID, stepKey string) string {
	return "draft:" + sessionID + ":" + stepKey
}
