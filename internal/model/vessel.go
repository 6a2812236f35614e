package model

// Vessel is a straight run of cells on a grid
type Vessel struct {
	Length     int
	Head       Coordinate
	Horizontal bool // true = extends along columns, false = along rows
	HP         int  // remaining hit points, starts at Length
}

// NewVessel creates an undamaged vessel
func NewVessel(length int, head Coordinate, horizontal bool) *Vessel {
	return &Vessel{
		Length:     length,
		Head:       head,
		Horizontal: horizontal,
		HP:         length,
	}
}

// Cells returns the coordinates the vessel covers, starting at the head
func (v *Vessel) Cells() []Coordinate {
	cells := make([]Coordinate, v.Length)
	for i := 0; i < v.Length; i++ {
		if v.Horizontal {
			cells[i] = v.Head.Add(0, i)
		} else {
			cells[i] = v.Head.Add(i, 0)
		}
	}
	return cells
}

// Covers returns true if the vessel occupies the given coordinate
func (v *Vessel) Covers(c Coordinate) bool {
	for _, cell := range v.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

// Sunk returns true once the vessel has no hit points left
func (v *Vessel) Sunk() bool {
	return v.HP == 0
}

func (v *Vessel) takeHit() {
	if v.HP > 0 {
		v.HP--
	}
}
