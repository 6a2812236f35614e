package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GridSuite struct {
	suite.Suite
	grid *Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

func (s *GridSuite) SetupTest() {
	s.grid = NewGrid(6, false)
}

func (s *GridSuite) place(length int, head Coordinate, horizontal bool) *Vessel {
	v := NewVessel(length, head, horizontal)
	s.Require().NoError(s.grid.PlaceVessel(v))
	return v
}

// IsOutOfBounds tests

func (s *GridSuite) TestIsOutOfBounds() {
	s.False(s.grid.IsOutOfBounds(Coordinate{X: 0, Y: 0}))
	s.False(s.grid.IsOutOfBounds(Coordinate{X: 5, Y: 5}))
	s.True(s.grid.IsOutOfBounds(Coordinate{X: 6, Y: 0}))
	s.True(s.grid.IsOutOfBounds(Coordinate{X: 0, Y: 6}))
	s.True(s.grid.IsOutOfBounds(Coordinate{X: -1, Y: 2}))
}

// PlaceVessel tests

func (s *GridSuite) TestPlaceVesselMarksCells() {
	v := s.place(3, Coordinate{X: 1, Y: 1}, true)

	for _, c := range v.Cells() {
		s.Equal(CellOccupied, s.grid.Cell(c))
		s.True(s.grid.IsOccupied(c))
	}
	s.Equal(1, s.grid.VesselCount())
	s.Equal([]*Vessel{v}, s.grid.Vessels())
}

func (s *GridSuite) TestPlaceVesselOutOfBounds() {
	err := s.grid.PlaceVessel(NewVessel(3, Coordinate{X: 0, Y: 4}, true))

	s.ErrorIs(err, ErrVesselOutOfBounds)
	s.Equal(0, s.grid.VesselCount())
	s.Equal(0, s.grid.CountCells(CellOccupied))
}

func (s *GridSuite) TestPlaceVesselHeadOnEdgeIsOutOfBounds() {
	err := s.grid.PlaceVessel(NewVessel(1, Coordinate{X: 6, Y: 6}, false))
	s.ErrorIs(err, ErrVesselOutOfBounds)
}

func (s *GridSuite) TestPlaceVesselCollision() {
	s.place(2, Coordinate{X: 2, Y: 2}, true)

	err := s.grid.PlaceVessel(NewVessel(3, Coordinate{X: 0, Y: 3}, false))

	s.ErrorIs(err, ErrVesselCollision)
	s.Equal(1, s.grid.VesselCount())
	s.Equal(2, s.grid.CountCells(CellOccupied))
	s.False(s.grid.IsOccupied(Coordinate{X: 0, Y: 3}))
	s.False(s.grid.IsOccupied(Coordinate{X: 1, Y: 3}))
}

// BlockAdjacency tests

func (s *GridSuite) TestBlockAdjacencyPreventsTouchingPlacements() {
	v := s.place(2, Coordinate{X: 2, Y: 2}, true)
	s.grid.BlockAdjacency(v, false)

	for _, c := range []Coordinate{{1, 1}, {1, 4}, {3, 1}, {3, 4}, {2, 1}, {2, 4}, {1, 2}, {3, 3}} {
		err := s.grid.PlaceVessel(NewVessel(1, c, true))
		s.ErrorIs(err, ErrVesselCollision, "placement at %v should be blocked", c)
	}

	s.NoError(s.grid.PlaceVessel(NewVessel(1, Coordinate{X: 4, Y: 4}, true)))
}

func (s *GridSuite) TestBlockAdjacencyWithoutRevealLeavesCellsHidden() {
	v := s.place(1, Coordinate{X: 0, Y: 0}, true)
	s.grid.BlockAdjacency(v, false)

	s.Equal(CellEmpty, s.grid.Cell(Coordinate{X: 1, Y: 1}))
	s.False(s.grid.IsTargeted(Coordinate{X: 1, Y: 1}))
	s.Equal(0, s.grid.TargetedCount())
}

func (s *GridSuite) TestClearReservedAllowsTouchingAgain() {
	v := s.place(1, Coordinate{X: 0, Y: 0}, true)
	s.grid.BlockAdjacency(v, false)
	s.grid.ClearReserved()

	s.NoError(s.grid.PlaceVessel(NewVessel(1, Coordinate{X: 1, Y: 1}, true)))
}

func (s *GridSuite) TestBlockAdjacencyRevealMarksNeighbours() {
	v := s.place(1, Coordinate{X: 0, Y: 0}, true)
	s.grid.BlockAdjacency(v, true)

	for _, c := range []Coordinate{{0, 1}, {1, 0}, {1, 1}} {
		s.Equal(CellBlocked, s.grid.Cell(c))
		s.True(s.grid.IsTargeted(c))
		s.True(s.grid.IsOccupied(c))
	}
	s.Equal(CellOccupied, s.grid.Cell(Coordinate{X: 0, Y: 0}))
	s.Equal(3, s.grid.TargetedCount())
}

// ResolveShot tests

func (s *GridSuite) TestResolveShotSinksSingleCellVessel() {
	s.place(1, Coordinate{X: 0, Y: 0}, true)

	outcome, err := s.grid.ResolveShot(Coordinate{X: 0, Y: 0})
	s.Require().NoError(err)
	s.Equal(ShotSunk, outcome)
	s.Equal(0, s.grid.VesselCount())
	s.Equal(CellHit, s.grid.Cell(Coordinate{X: 0, Y: 0}))

	_, err = s.grid.ResolveShot(Coordinate{X: 0, Y: 0})
	s.ErrorIs(err, ErrAlreadyTargeted)
}

func (s *GridSuite) TestResolveShotOutOfBounds() {
	s.place(1, Coordinate{X: 5, Y: 5}, true)

	_, err := s.grid.ResolveShot(Coordinate{X: 6, Y: 6})
	s.ErrorIs(err, ErrShotOutOfBounds)

	_, err = s.grid.ResolveShot(Coordinate{X: -1, Y: 0})
	s.ErrorIs(err, ErrShotOutOfBounds)
	s.Equal(0, s.grid.TargetedCount())
}

func (s *GridSuite) TestResolveShotHitThenSunk() {
	v := s.place(2, Coordinate{X: 1, Y: 1}, true)

	outcome, err := s.grid.ResolveShot(Coordinate{X: 1, Y: 1})
	s.Require().NoError(err)
	s.Equal(ShotHit, outcome)
	s.Equal(1, s.grid.VesselCount())
	s.Equal(1, v.HP)

	outcome, err = s.grid.ResolveShot(Coordinate{X: 1, Y: 2})
	s.Require().NoError(err)
	s.Equal(ShotSunk, outcome)
	s.Equal(0, s.grid.VesselCount())
	s.True(v.Sunk())
}

func (s *GridSuite) TestResolveShotMiss() {
	s.place(1, Coordinate{X: 0, Y: 0}, true)

	outcome, err := s.grid.ResolveShot(Coordinate{X: 4, Y: 4})
	s.Require().NoError(err)
	s.Equal(ShotMiss, outcome)
	s.Equal(CellMiss, s.grid.Cell(Coordinate{X: 4, Y: 4}))
	s.True(s.grid.IsTargeted(Coordinate{X: 4, Y: 4}))
	s.Equal(1, s.grid.VesselCount())
}

func (s *GridSuite) TestResolveShotRejectionDoesNotMutate() {
	s.place(2, Coordinate{X: 3, Y: 3}, false)
	_, err := s.grid.ResolveShot(Coordinate{X: 3, Y: 3})
	s.Require().NoError(err)

	before := s.grid.Render()
	targeted := s.grid.TargetedCount()
	for i := 0; i < 3; i++ {
		_, err = s.grid.ResolveShot(Coordinate{X: 3, Y: 3})
		s.ErrorIs(err, ErrAlreadyTargeted)
	}

	s.Equal(before, s.grid.Render())
	s.Equal(targeted, s.grid.TargetedCount())
	s.Equal(1, s.grid.VesselCount())
}

func (s *GridSuite) TestSinkRevealsSurroundingCells() {
	s.place(2, Coordinate{X: 2, Y: 2}, false)

	_, _ = s.grid.ResolveShot(Coordinate{X: 2, Y: 2})
	outcome, err := s.grid.ResolveShot(Coordinate{X: 3, Y: 2})
	s.Require().NoError(err)
	s.Equal(ShotSunk, outcome)

	// 3x4 box around the vessel minus the 2 vessel cells
	s.Equal(10, s.grid.CountCells(CellBlocked))
	s.Equal(12, s.grid.TargetedCount())

	_, err = s.grid.ResolveShot(Coordinate{X: 1, Y: 1})
	s.ErrorIs(err, ErrAlreadyTargeted)
}

func (s *GridSuite) TestSinkRevealKeepsEarlierMisses() {
	s.place(1, Coordinate{X: 2, Y: 2}, true)

	_, _ = s.grid.ResolveShot(Coordinate{X: 1, Y: 1})
	_, _ = s.grid.ResolveShot(Coordinate{X: 2, Y: 2})

	s.Equal(CellMiss, s.grid.Cell(Coordinate{X: 1, Y: 1}))
	s.Equal(7, s.grid.CountCells(CellBlocked))
}

func (s *GridSuite) TestVesselCountMatchesAfloatVessels() {
	s.place(2, Coordinate{X: 0, Y: 0}, true)
	s.place(1, Coordinate{X: 2, Y: 0}, true)
	s.place(1, Coordinate{X: 4, Y: 4}, true)

	shots := []Coordinate{{0, 0}, {5, 5}, {2, 0}, {0, 1}, {3, 3}, {4, 4}}
	for _, c := range shots {
		_, _ = s.grid.ResolveShot(c)

		afloat := 0
		for _, v := range s.grid.Vessels() {
			if !v.Sunk() {
				afloat++
			}
		}
		s.Equal(afloat, s.grid.VesselCount())
	}
	s.Equal(0, s.grid.VesselCount())
}

// Render tests

func (s *GridSuite) TestRenderShowsVessels() {
	s.grid = NewGrid(2, false)
	s.place(1, Coordinate{X: 0, Y: 1}, true)

	expected := "  | 1 | 2 |\n1 | ~ | ■ |\n2 | ~ | ~ |"
	s.Equal(expected, s.grid.Render())
}

func (s *GridSuite) TestRenderHiddenMasksVessels() {
	s.grid = NewGrid(2, true)
	s.place(2, Coordinate{X: 0, Y: 0}, false)
	_, _ = s.grid.ResolveShot(Coordinate{X: 0, Y: 0})
	_, _ = s.grid.ResolveShot(Coordinate{X: 1, Y: 1})

	expected := "  | 1 | 2 |\n1 | X | ~ |\n2 | ~ | T |"
	s.Equal(expected, s.grid.Render())
	s.NotContains(s.grid.Render(), "■")
}

func (s *GridSuite) TestRowsMatchRender() {
	s.place(3, Coordinate{X: 1, Y: 0}, true)
	_, _ = s.grid.ResolveShot(Coordinate{X: 1, Y: 1})

	rows := s.grid.Rows()
	s.Len(rows, 6)
	s.Equal("■ X ■ ~ ~ ~", strings.Join(rows[1], " "))
}
