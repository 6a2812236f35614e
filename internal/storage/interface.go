package storage

import (
	"context"

	"github.com/mcoot/seabattle/internal/model"
)

// Storage defines the interface for match record persistence
type Storage interface {
	// Match record operations
	SaveMatchRecord(ctx context.Context, record *model.MatchRecord) error
	GetMatchRecord(ctx context.Context, id model.MatchID) (*model.MatchRecord, error)

	// Session operations
	ListMatchRecordsForSession(ctx context.Context, sessionID model.SessionID) ([]*model.MatchRecord, error)
	DeleteSession(ctx context.Context, sessionID model.SessionID) error
}
