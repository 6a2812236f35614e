package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// SessionID groups the matches played in one program run
type SessionID string

// Side identifies one of the two participants
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStatePlayerTurn   MatchState = "player_turn"   // Player is shooting
	MatchStateOpponentTurn MatchState = "opponent_turn" // Opponent is shooting
	MatchStatePlayerWins   MatchState = "player_wins"   // Opponent fleet destroyed
	MatchStateOpponentWins MatchState = "opponent_wins" // Player fleet destroyed
)

// IsTerminal returns true once the match has a winner
func (s MatchState) IsTerminal() bool {
	return s == MatchStatePlayerWins || s == MatchStateOpponentWins
}

// Match is a single game between the player and the automated opponent
type Match struct {
	ID        MatchID
	SessionID SessionID
	State     MatchState

	PlayerGrid    *Grid
	OpponentGrid  *Grid
	PlayerActor   Actor
	OpponentActor Actor

	// Resolved shots per side, rejected shots excluded
	PlayerShots   int
	OpponentShots int

	StartedAt time.Time
}

// ActingSide returns the side whose turn it is, or "" once the match is over
func (m *Match) ActingSide() Side {
	switch m.State {
	case MatchStatePlayerTurn:
		return SidePlayer
	case MatchStateOpponentTurn:
		return SideOpponent
	default:
		return ""
	}
}

// ActorFor returns the actor playing the given side
func (m *Match) ActorFor(side Side) Actor {
	if side == SidePlayer {
		return m.PlayerActor
	}
	return m.OpponentActor
}

// GridOf returns the grid owned by the given side
func (m *Match) GridOf(side Side) *Grid {
	if side == SidePlayer {
		return m.PlayerGrid
	}
	return m.OpponentGrid
}

// Winner returns the winning side, or "" while the match is in progress
func (m *Match) Winner() Side {
	switch m.State {
	case MatchStatePlayerWins:
		return SidePlayer
	case MatchStateOpponentWins:
		return SideOpponent
	default:
		return ""
	}
}

// MatchRecord is the stored summary of a finished match
type MatchRecord struct {
	ID                  MatchID
	SessionID           SessionID
	Winner              Side
	PlayerShots         int
	OpponentShots       int
	PlayerVesselsLeft   int
	OpponentVesselsLeft int
	StartedAt           time.Time
	CompletedAt         time.Time
}

// SessionTally aggregates the finished matches of a session
type SessionTally struct {
	SessionID SessionID
	Played    int
	Wins      int
	Losses    int
}
