package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/seabattle/internal/dependencies/clock"
	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/fleet"
	"github.com/mcoot/seabattle/internal/storage"
)

// Controller manages the match state machine and turn flow
type Controller struct {
	storage storage.Storage
	fleet   *fleet.Generator
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	fleetGenerator *fleet.Generator,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		fleet:   fleetGenerator,
		clock:   clock,
		logger:  logger,
	}
}

// CreateMatch generates both fleets and sets up a match with the player to move
func (c *Controller) CreateMatch(ctx context.Context, sessionID model.SessionID, player, opponent model.Actor) (*model.Match, error) {
	playerGrid, err := c.fleet.Generate(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("generating player fleet: %w", err)
	}
	opponentGrid, err := c.fleet.Generate(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("generating opponent fleet: %w", err)
	}

	return c.NewMatchWithGrids(sessionID, playerGrid, opponentGrid, player, opponent), nil
}

// NewMatchWithGrids sets up a match over pre-built grids
func (c *Controller) NewMatchWithGrids(sessionID model.SessionID, playerGrid, opponentGrid *model.Grid, player, opponent model.Actor) *model.Match {
	m := &model.Match{
		ID:            model.MatchID(uuid.NewString()),
		SessionID:     sessionID,
		State:         model.MatchStatePlayerTurn,
		PlayerGrid:    playerGrid,
		OpponentGrid:  opponentGrid,
		PlayerActor:   player,
		OpponentActor: opponent,
		StartedAt:     c.clock.Now(),
	}

	c.logger.Info("match created",
		slog.String("match_id", string(m.ID)),
		slog.String("session_id", string(sessionID)),
	)

	return m
}

// Step runs a single iteration of the turn loop: show the boards, settle a
// finished match, or let the acting side take one shot.
func (c *Controller) Step(ctx context.Context, m *model.Match, reporter Reporter) error {
	if m.State.IsTerminal() {
		return model.ErrMatchComplete
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	reporter.ReportBoards(m)

	switch {
	case m.OpponentGrid.VesselCount() == 0:
		return c.finish(ctx, m, model.MatchStatePlayerWins, reporter)
	case m.PlayerGrid.VesselCount() == 0:
		return c.finish(ctx, m, model.MatchStateOpponentWins, reporter)
	}

	side := m.ActingSide()
	target := m.GridOf(side.Other())

	coord, err := m.ActorFor(side).SelectTarget(ctx, target)
	if err != nil {
		return err
	}

	outcome, err := target.ResolveShot(coord)
	if err != nil {
		if !model.IsShotError(err) {
			return err
		}
		c.reject(m, side, coord, err, reporter)
		return nil
	}

	if side == model.SidePlayer {
		m.PlayerShots++
	} else {
		m.OpponentShots++
	}

	reporter.ReportShot(m, side, coord, outcome)

	if !outcome.RetainsTurn() {
		m.State = turnStateFor(side.Other())
	}
	return nil
}

// reject absorbs a refused shot. The acting side keeps the turn either way;
// only the player hears about it.
func (c *Controller) reject(m *model.Match, side model.Side, coord model.Coordinate, err error, reporter Reporter) {
	if side == model.SidePlayer {
		reporter.ReportRejectedShot(m, side, coord, err)
		return
	}
	c.logger.Debug("opponent shot rejected",
		slog.String("match_id", string(m.ID)),
		slog.Int("x", coord.X),
		slog.Int("y", coord.Y),
		slog.String("error", err.Error()),
	)
}

// Run steps the match until one side has no vessels left
func (c *Controller) Run(ctx context.Context, m *model.Match, reporter Reporter) (*model.MatchRecord, error) {
	for !m.State.IsTerminal() {
		if err := c.Step(ctx, m, reporter); err != nil {
			return nil, err
		}
	}
	return c.storage.GetMatchRecord(ctx, m.ID)
}

func (c *Controller) finish(ctx context.Context, m *model.Match, state model.MatchState, reporter Reporter) error {
	m.State = state

	record := &model.MatchRecord{
		ID:                  m.ID,
		SessionID:           m.SessionID,
		Winner:              m.Winner(),
		PlayerShots:         m.PlayerShots,
		OpponentShots:       m.OpponentShots,
		PlayerVesselsLeft:   m.PlayerGrid.VesselCount(),
		OpponentVesselsLeft: m.OpponentGrid.VesselCount(),
		StartedAt:           m.StartedAt,
		CompletedAt:         c.clock.Now(),
	}

	c.logger.Info("match completed",
		slog.String("match_id", string(m.ID)),
		slog.String("winner", string(record.Winner)),
		slog.Int("player_shots", record.PlayerShots),
		slog.Int("opponent_shots", record.OpponentShots),
		slog.Duration("duration", c.clock.Since(m.StartedAt)),
	)

	reporter.ReportResult(m)

	if err := c.storage.SaveMatchRecord(ctx, record); err != nil {
		c.logger.Error("failed to save match record",
			slog.String("match_id", string(m.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Tally summarises the finished matches of a session
func (c *Controller) Tally(ctx context.Context, sessionID model.SessionID) (*model.SessionTally, error) {
	records, err := c.storage.ListMatchRecordsForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tally := &model.SessionTally{SessionID: sessionID}
	for _, r := range records {
		tally.Played++
		switch r.Winner {
		case model.SidePlayer:
			tally.Wins++
		case model.SideOpponent:
			tally.Losses++
		}
	}
	return tally, nil
}

// EndSession drops every record of a finished session
func (c *Controller) EndSession(ctx context.Context, sessionID model.SessionID) error {
	if err := c.storage.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	c.logger.Debug("session ended", slog.String("session_id", string(sessionID)))
	return nil
}

func turnStateFor(side model.Side) model.MatchState {
	if side == model.SidePlayer {
		return model.MatchStatePlayerTurn
	}
	return model.MatchStateOpponentTurn
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateMatch(ctx context.Context, sessionID model.SessionID, player, opponent model.Actor) (*model.Match, error)
	Step(ctx context.Context, m *model.Match, reporter Reporter) error
	Run(ctx context.Context, m *model.Match, reporter Reporter) (*model.MatchRecord, error)
	Tally(ctx context.Context, sessionID model.SessionID) (*model.SessionTally, error)
	EndSession(ctx context.Context, sessionID model.SessionID) error
}

var _ ControllerInterface = (*Controller)(nil)
