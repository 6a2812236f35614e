package actor

import (
	"context"

	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
)

// AutoActor fires at uniformly random cells and keeps no memory of past shots
type AutoActor struct {
	random random.Random
}

// NewAutoActor creates a new AutoActor
func NewAutoActor(rnd random.Random) *AutoActor {
	return &AutoActor{random: rnd}
}

var _ model.Actor = (*AutoActor)(nil)

// SelectTarget picks any in-bounds cell, including ones already shot at
func (a *AutoActor) SelectTarget(ctx context.Context, target *model.Grid) (model.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return model.Coordinate{}, err
	}
	return model.Coordinate{
		X: a.random.Intn(target.Size()),
		Y: a.random.Intn(target.Size()),
	}, nil
}
