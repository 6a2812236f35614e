package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/actor"
	"github.com/mcoot/seabattle/internal/services/match"
)

const (
	stopWord       = "stop"
	msgInputClosed = "Input closed, ending the session."
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play against the automated opponent",
		Long: `Play matches against an opponent that fires at random.

Shots are read from standard input as two integers, row then column.
After each match type "stop" to end the session and see the tally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			// Prompts would break a json event stream
			promptW := cmd.OutOrStdout()
			if cfg.Output == FormatJSON {
				promptW = cmd.ErrOrStderr()
			}

			console := NewConsole(cmd.InOrStdin())
			human := actor.NewHumanActor(console, promptW)
			opponent := actor.NewAutoActor(app.Random)
			sessionID := model.SessionID(uuid.NewString())

			out.PrintBanner()

			if err := playSession(cmd.Context(), app.MatchController, console, out, sessionID, human, opponent); err != nil {
				return err
			}
			return finishSession(cmd.Context(), app.MatchController, out, sessionID)
		},
	}
}

// playSession runs matches until the player answers the replay prompt with
// the stop word or the input runs out
func playSession(ctx context.Context, controller *match.Controller, console *Console, out *Output, sessionID model.SessionID, player, opponent model.Actor) error {
	for {
		m, err := controller.CreateMatch(ctx, sessionID, player, opponent)
		if err != nil {
			return err
		}

		if _, err := controller.Run(ctx, m, out); err != nil {
			if errors.Is(err, io.EOF) {
				out.PrintMessage(msgInputClosed)
				return nil
			}
			return err
		}

		out.PrintReplayPrompt()
		line, err := console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				out.PrintMessage(msgInputClosed)
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == stopWord {
			return nil
		}
	}
}

// finishSession prints the tally and drops the session's records
func finishSession(ctx context.Context, controller *match.Controller, out *Output, sessionID model.SessionID) error {
	tally, err := controller.Tally(ctx, sessionID)
	if err != nil {
		return err
	}
	out.PrintTally(tally)
	return controller.EndSession(ctx, sessionID)
}
