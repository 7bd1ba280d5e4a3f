package memory

import (
	"context"
	"sort"
	"sync"

	"promohub/internal/talent/models"
	"promohub/pkg/platform/sentinel"
)

// Stores here keep the default wiring and unit tests lightweight. They
// intentionally favor clarity over performance.

// TalentStore is the in-memory TalentStore implementation.
type TalentStore struct {
	mu        sync.RWMutex
	talents   map[int64]models.Talent
	uniqueIDs map[string]int64
	nextID    int64
}

func NewTalentStore() *TalentStore {
	return &TalentStore{
		talents:   make(map[int64]models.Talent),
		uniqueIDs: make(map[string]int64),
	}
}

func (s *TalentStore) Create(_ context.Context, t *models.Talent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.uniqueIDs[t.UniqueID]; taken {
		return sentinel.ErrConflict
	}
	s.nextID++
	t.ID = s.nextID
	s.talents[t.ID] = *t
	s.uniqueIDs[t.UniqueID] = t.ID
	return nil
}

func (s *TalentStore) List(_ context.Context) ([]models.Talent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Talent, 0, len(s.talents))
	for _, t := range s.talents {
		out = append(out, t)
	}
	// Stable iteration order keeps listing behavior deterministic.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *TalentStore) FindByID(_ context.Context, id int64) (*models.Talent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.talents[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &t, nil
}

func (s *TalentStore) UpdateStatus(_ context.Context, id int64, status models.TalentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.talents[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	t.Status = status
	s.talents[id] = t
	return nil
}

func (s *TalentStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.talents[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.talents, id)
	delete(s.uniqueIDs, t.UniqueID)
	return nil
}

// DocumentStore is the in-memory DocumentStore implementation.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[int64][]models.Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[int64][]models.Document)}
}

func (s *DocumentStore) Create(_ context.Context, d *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.TalentID] = append(s.docs[d.TalentID], *d)
	return nil
}

func (s *DocumentStore) ListByTalent(_ context.Context, talentID int64) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Document{}, s.docs[talentID]...), nil
}

func (s *DocumentStore) DeleteByTalent(_ context.Context, talentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, talentID)
	return nil
}
