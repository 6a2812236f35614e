package actor

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/mcoot/seabattle/internal/model"
)

const (
	promptX         = "X: "
	promptY         = "Y: "
	msgEnterInteger = "Enter an integer!"
)

// TokenReader supplies whitespace-delimited input tokens
type TokenReader interface {
	ReadToken() (string, error)
}

// HumanActor asks a person for 1-based coordinates
type HumanActor struct {
	in  TokenReader
	out io.Writer
}

// NewHumanActor creates a HumanActor reading from in and prompting on out
func NewHumanActor(in TokenReader, out io.Writer) *HumanActor {
	return &HumanActor{in: in, out: out}
}

var _ model.Actor = (*HumanActor)(nil)

// SelectTarget prompts for X then Y until both are integers. A malformed
// token restarts the pair from X. Bounds are left to the grid.
func (h *HumanActor) SelectTarget(ctx context.Context, target *model.Grid) (model.Coordinate, error) {
	for {
		x, ok, err := h.ask(ctx, promptX)
		if err != nil {
			return model.Coordinate{}, err
		}
		if !ok {
			continue
		}

		y, ok, err := h.ask(ctx, promptY)
		if err != nil {
			return model.Coordinate{}, err
		}
		if !ok {
			continue
		}

		return model.Coordinate{X: x - 1, Y: y - 1}, nil
	}
}

func (h *HumanActor) ask(ctx context.Context, prompt string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	fmt.Fprint(h.out, prompt)
	token, err := h.in.ReadToken()
	if err != nil {
		return 0, false, fmt.Errorf("reading coordinate: %w", err)
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		fmt.Fprintln(h.out, msgEnterInteger)
		return 0, false, nil
	}
	return value, true, nil
}
