package match

import "github.com/mcoot/seabattle/internal/model"

// Reporter receives everything a match wants shown to the player
type Reporter interface {
	// ReportBoards is called once per iteration with the current state of both grids
	ReportBoards(m *model.Match)
	// ReportShot is called after a shot resolves
	ReportShot(m *model.Match, side model.Side, target model.Coordinate, outcome model.ShotOutcome)
	// ReportRejectedShot is called when the player's shot is refused by the grid
	ReportRejectedShot(m *model.Match, side model.Side, target model.Coordinate, err error)
	// ReportResult is called once when the match reaches a terminal state
	ReportResult(m *model.Match)
}

// NopReporter discards every report
type NopReporter struct{}

func (NopReporter) ReportBoards(*model.Match) {}
func (NopReporter) ReportShot(*model.Match, model.Side, model.Coordinate, model.ShotOutcome) {}
func (NopReporter) ReportRejectedShot(*model.Match, model.Side, model.Coordinate, error) {}
func (NopReporter) ReportResult(*model.Match) {}

var _ Reporter = NopReporter{}
