package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/actor"
	"github.com/mcoot/seabattle/internal/services/match"
)

func newSimulateCmd() *cobra.Command {
	var (
		matches int
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let two automated actors play each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if matches < 1 {
				return fmt.Errorf("--matches must be at least 1, got %d", matches)
			}

			ctx := cmd.Context()
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			var reporter match.Reporter = match.NopReporter{}
			if watch {
				reporter = out
			}

			player := actor.NewAutoActor(app.Random)
			opponent := actor.NewAutoActor(app.Random)
			sessionID := model.SessionID(uuid.NewString())

			for i := 0; i < matches; i++ {
				m, err := app.MatchController.CreateMatch(ctx, sessionID, player, opponent)
				if err != nil {
					return err
				}
				record, err := app.MatchController.Run(ctx, m, reporter)
				if err != nil {
					return err
				}
				out.PrintRecord(record)
			}

			return finishSession(ctx, app.MatchController, out, sessionID)
		},
	}

	cmd.Flags().IntVarP(&matches, "matches", "n", 1, "Number of matches to play")
	cmd.Flags().BoolVar(&watch, "watch", false, "Print boards and shots for every turn")

	return cmd
}
