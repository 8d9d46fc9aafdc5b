package engine

import "github.com/lixenwraith/term-snake/core"

// Snapshot is a read-only copy of the board handed to the renderer each tick
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Cells     []CellState
	Head      core.Point
	Direction core.Point
	Length    int
	Status    Status
}

// At returns the cell state at p, CellEmpty when p is off the grid
func (s Snapshot) At(p core.Point) CellState {
	if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
		return CellEmpty
	}
	return s.Cells[p.Y*s.Width+p.X]
}

func (b *Board) snapshot(tick uint64) Snapshot {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)
	return Snapshot{
		Tick:      tick,
		Width:     b.width,
		Height:    b.height,
		Cells:     cells,
		Head:      b.player.Pos,
		Direction: b.player.Direction,
		Length:    b.player.Length,
		Status:    b.player.Status,
	}
}
