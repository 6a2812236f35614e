package redis

import (
	"fmt"

	"github.com/mcoot/seabattle/internal/model"
)

// Key prefix for all seabattle data
const keyPrefix = "seabattle"

// matchRecordKey returns the Redis key for a MatchRecord
func matchRecordKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// sessionMatchesIndexKey returns the Redis key for the SET of match records in a session
func sessionMatchesIndexKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:session_matches:%s", keyPrefix, sessionID)
}
