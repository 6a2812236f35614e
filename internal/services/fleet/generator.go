package fleet

import (
	"context"
	"log/slog"

	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
)

const (
	// DefaultGridSize is the dimension of every board
	DefaultGridSize = 6
	// MaxPlacementRetries is how many failed placements a single vessel may
	// accumulate before the whole grid is abandoned
	MaxPlacementRetries = 1000
)

// DefaultFleet lists the vessel lengths placed on every board, in placement order
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// Generator builds randomly populated grids
type Generator struct {
	random random.Random
	logger *slog.Logger
	size   int
	fleet  []int
}

// New creates a Generator for the default board and fleet
func New(rnd random.Random, logger *slog.Logger) *Generator {
	return &Generator{
		random: rnd,
		logger: logger,
		size:   DefaultGridSize,
		fleet:  DefaultFleet,
	}
}

// TryGenerate makes a single attempt at placing the whole fleet on an empty
// grid. It returns ErrFleetGenerationExhausted if any vessel fails to place
// within MaxPlacementRetries; the partial grid is discarded.
func (g *Generator) TryGenerate(hidden bool) (*model.Grid, error) {
	grid := model.NewGrid(g.size, hidden)

	for _, length := range g.fleet {
		if err := g.placeOne(grid, length); err != nil {
			return nil, err
		}
	}

	grid.ClearReserved()
	return grid, nil
}

func (g *Generator) placeOne(grid *model.Grid, length int) error {
	retries := 0
	for {
		// Heads are drawn from [0, size] so the bounds check rejects the extra row and column
		head := model.Coordinate{
			X: g.random.Intn(g.size + 1),
			Y: g.random.Intn(g.size + 1),
		}
		vessel := model.NewVessel(length, head, g.random.Intn(2) == 1)

		if err := grid.PlaceVessel(vessel); err == nil {
			grid.BlockAdjacency(vessel, false)
			return nil
		}

		retries++
		if retries > MaxPlacementRetries {
			return model.ErrFleetGenerationExhausted
		}
	}
}

// Generate keeps attempting fresh grids until one holds the whole fleet
func (g *Generator) Generate(ctx context.Context, hidden bool) (*model.Grid, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grid, err := g.TryGenerate(hidden)
		if err == nil {
			g.logger.Debug("fleet placed",
				slog.Int("attempt", attempt),
				slog.Int("vessels", grid.VesselCount()),
				slog.Int("cells", grid.CountCells(model.CellOccupied)),
			)
			return grid, nil
		}

		g.logger.Debug("discarding grid",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
	}
}
