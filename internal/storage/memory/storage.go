package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	records  map[model.MatchID]*model.MatchRecord
	sessions map[model.SessionID][]model.MatchID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		records:  make(map[model.MatchID]*model.MatchRecord),
		sessions: make(map[model.SessionID][]model.MatchID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveMatchRecord(ctx context.Context, record *model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.ID]; !exists {
		s.sessions[record.SessionID] = append(s.sessions[record.SessionID], record.ID)
	}
	stored := *record
	s.records[record.ID] = &stored
	return nil
}

func (s *Storage) GetMatchRecord(ctx context.Context, id model.MatchID) (*model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	result := *record
	return &result, nil
}

func (s *Storage) ListMatchRecordsForSession(ctx context.Context, sessionID model.SessionID) ([]*model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.sessions[sessionID]
	result := make([]*model.MatchRecord, 0, len(ids))
	for _, id := range ids {
		if record, ok := s.records[id]; ok {
			r := *record
			result = append(result, &r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletedAt.Before(result[j].CompletedAt)
	})
	return result, nil
}

func (s *Storage) DeleteSession(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.sessions[sessionID] {
		delete(s.records, id)
	}
	delete(s.sessions, sessionID)
	return nil
}
