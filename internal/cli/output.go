package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/match"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const banner = `Welcome to Sea Battle!
Both fleets hide on a 6x6 board: one ship of 3 cells, two of 2 cells and four of 1 cell.
Ships never touch, not even diagonally.
Enter a shot as a row (X) and a column (Y), both from 1 to 6.
A hit or a sink earns another shot. A miss passes the turn.
Sink the whole enemy fleet to win.`

const replayPrompt = `Type "stop" to finish. Any other line starts a new game. `

// Output renders match events and session results in the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

var _ match.Reporter = (*Output)(nil)

// ValidateFormat checks that format is one Output understands
func ValidateFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
	return nil
}

// Event payloads for json output

type boardView struct {
	Rows      [][]string `json:"rows"`
	ShipsLeft int        `json:"ships_left"`
}

type boardsEvent struct {
	Type     string    `json:"type"`
	MatchID  string    `json:"match_id"`
	State    string    `json:"state"`
	Player   boardView `json:"player"`
	Opponent boardView `json:"opponent"`
}

type shotEvent struct {
	Type    string `json:"type"`
	MatchID string `json:"match_id"`
	Side    string `json:"side"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Outcome string `json:"outcome,omitempty"`
	Error   string `json:"error,omitempty"`
}

type resultEvent struct {
	Type    string `json:"type"`
	MatchID string `json:"match_id"`
	Winner  string `json:"winner"`
}

type recordEvent struct {
	Type                string    `json:"type"`
	MatchID             string    `json:"match_id"`
	Winner              string    `json:"winner"`
	PlayerShots         int       `json:"player_shots"`
	OpponentShots       int       `json:"opponent_shots"`
	PlayerVesselsLeft   int       `json:"player_ships_left"`
	OpponentVesselsLeft int       `json:"opponent_ships_left"`
	StartedAt           time.Time `json:"started_at"`
	CompletedAt         time.Time `json:"completed_at"`
}

type tallyEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Played    int    `json:"played"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
}

// ReportBoards prints both grids, the opponent's with its fleet hidden
func (o *Output) ReportBoards(m *model.Match) {
	if o.format == FormatJSON {
		o.printJSON(boardsEvent{
			Type:     "boards",
			MatchID:  string(m.ID),
			State:    string(m.State),
			Player:   boardView{Rows: m.PlayerGrid.Rows(), ShipsLeft: m.PlayerGrid.VesselCount()},
			Opponent: boardView{Rows: m.OpponentGrid.Rows(), ShipsLeft: m.OpponentGrid.VesselCount()},
		})
		return
	}

	fmt.Fprintln(o.w, "\nYour board:")
	fmt.Fprintln(o.w, m.PlayerGrid.Render())
	fmt.Fprintf(o.w, "Ships left: %d\n", m.PlayerGrid.VesselCount())
	fmt.Fprintln(o.w, "\nOpponent board:")
	fmt.Fprintln(o.w, m.OpponentGrid.Render())
	fmt.Fprintf(o.w, "Ships left: %d\n", m.OpponentGrid.VesselCount())
}

// ReportShot prints the outcome of a resolved shot
func (o *Output) ReportShot(m *model.Match, side model.Side, target model.Coordinate, outcome model.ShotOutcome) {
	if o.format == FormatJSON {
		o.printJSON(shotEvent{
			Type:    "shot",
			MatchID: string(m.ID),
			Side:    string(side),
			X:       target.X + 1,
			Y:       target.Y + 1,
			Outcome: string(outcome),
		})
		return
	}

	if side == model.SideOpponent {
		fmt.Fprintf(o.w, "Opponent shoots at %s\n", target)
	}
	switch outcome {
	case model.ShotSunk:
		fmt.Fprintln(o.w, "Ship sunk!")
	case model.ShotHit:
		fmt.Fprintln(o.w, "Ship damaged!")
	default:
		fmt.Fprintln(o.w, "Miss!")
	}
}

// ReportRejectedShot tells the player why a shot was refused
func (o *Output) ReportRejectedShot(m *model.Match, side model.Side, target model.Coordinate, err error) {
	if o.format == FormatJSON {
		o.printJSON(shotEvent{
			Type:    "rejected",
			MatchID: string(m.ID),
			Side:    string(side),
			X:       target.X + 1,
			Y:       target.Y + 1,
			Error:   err.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, model.ErrShotOutOfBounds):
		fmt.Fprintln(o.w, "You are shooting outside the board!")
	case errors.Is(err, model.ErrAlreadyTargeted):
		fmt.Fprintln(o.w, "You already shot there!")
	default:
		fmt.Fprintf(o.w, "Shot rejected: %s\n", err)
	}
}

// ReportResult announces the winner
func (o *Output) ReportResult(m *model.Match) {
	if o.format == FormatJSON {
		o.printJSON(resultEvent{
			Type:    "result",
			MatchID: string(m.ID),
			Winner:  string(m.Winner()),
		})
		return
	}

	if m.Winner() == model.SidePlayer {
		fmt.Fprintln(o.w, "You win!")
	} else {
		fmt.Fprintln(o.w, "You lost!")
	}
}

// PrintBanner prints the rules. Text output only.
func (o *Output) PrintBanner() {
	if o.format == FormatJSON {
		return
	}
	fmt.Fprintln(o.w, banner)
}

// PrintReplayPrompt asks whether to play again. Text output only.
func (o *Output) PrintReplayPrompt() {
	if o.format == FormatJSON {
		return
	}
	fmt.Fprint(o.w, "\n"+replayPrompt)
}

// PrintRecord prints the summary of a finished match
func (o *Output) PrintRecord(r *model.MatchRecord) {
	if o.format == FormatJSON {
		o.printJSON(recordEvent{
			Type:                "record",
			MatchID:             string(r.ID),
			Winner:              string(r.Winner),
			PlayerShots:         r.PlayerShots,
			OpponentShots:       r.OpponentShots,
			PlayerVesselsLeft:   r.PlayerVesselsLeft,
			OpponentVesselsLeft: r.OpponentVesselsLeft,
			StartedAt:           r.StartedAt,
			CompletedAt:         r.CompletedAt,
		})
		return
	}

	fmt.Fprintf(o.w, "Match %s: %s won after %d player shots and %d opponent shots\n",
		r.ID, r.Winner, r.PlayerShots, r.OpponentShots)
}

// PrintTally prints the session scoreboard
func (o *Output) PrintTally(t *model.SessionTally) {
	if o.format == FormatJSON {
		o.printJSON(tallyEvent{
			Type:      "tally",
			SessionID: string(t.SessionID),
			Played:    t.Played,
			Wins:      t.Wins,
			Losses:    t.Losses,
		})
		return
	}

	fmt.Fprintf(o.w, "\nSession %s\n", t.SessionID)
	fmt.Fprintf(o.w, "Played: %d  Wins: %d  Losses: %d\n", t.Played, t.Wins, t.Losses)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		o.printJSON(map[string]string{"type": "message", "message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	_ = json.NewEncoder(o.w).Encode(data)
}
