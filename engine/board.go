package engine

import (
	"fmt"

	"github.com/lixenwraith/term-snake/core"
)

// CellState is the content of one grid cell
// Positive values are trail segments holding their age in ticks
type CellState int

const (
	CellEmpty CellState = 0
	CellApple CellState = -1
)

// TrailCell returns the state of a trail segment of the given age (age >= 1)
func TrailCell(age int) CellState {
	return CellState(age)
}

// IsTrail reports whether the cell is part of the snake's body
func (s CellState) IsTrail() bool {
	return s > 0
}

// TrailAge returns the age of a trail cell, 0 for any other state
func (s CellState) TrailAge() int {
	if s > 0 {
		return int(s)
	}
	return 0
}

// Status is the player's life state
type Status uint8

const (
	Alive Status = iota
	Dead
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Player is the snake's head and the parameters its body is derived from
type Player struct {
	Pos       core.Point
	Direction core.Point
	Length    int
	Status    Status
}

// Rand is the random source used for apple placement
type Rand interface {
	Intn(n int) int
}

// Board owns the cell grid and the single player
// Cells are stored row-major in one fixed slice
type Board struct {
	width  int
	height int
	cells  []CellState
	player Player
	rng    Rand
}

// NewBoard creates a board with all cells empty, a centered player and one apple attempt
func NewBoard(width, height int, rng Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", width, height)
	}
	if rng == nil {
		return nil, fmt.Errorf("board requires a random source")
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
		rng:    rng,
	}
	b.Reset()
	return b, nil
}

// Width returns the grid width in cells
func (b *Board) Width() int {
	return b.width
}

// Height returns the grid height in cells
func (b *Board) Height() int {
	return b.height
}

// Player returns a copy of the player state
func (b *Board) Player() Player {
	return b.player
}

// InBounds reports whether p lies on the grid
func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// ValueAt returns the state at p; p must be in bounds
func (b *Board) ValueAt(p core.Point) CellState {
	return b.cells[p.Y*b.width+p.X]
}

// SetValue stores state at p; p must be in bounds
func (b *Board) SetValue(p core.Point, state CellState) {
	b.cells[p.Y*b.width+p.X] = state
}

// PlaceApple makes a single placement attempt at a uniformly random cell
// The attempt is a no-op when the cell is occupied by trail, an apple or the head
func (b *Board) PlaceApple() bool {
	p := core.Point{X: b.rng.Intn(b.width), Y: b.rng.Intn(b.height)}
	if p == b.player.Pos || b.ValueAt(p) != CellEmpty {
		return false
	}
	b.SetValue(p, CellApple)
	return true
}

// AppleCount returns the number of apples on the grid
func (b *Board) AppleCount() int {
	n := 0
	for _, c := range b.cells {
		if c == CellApple {
			n++
		}
	}
	return n
}

// Reset clears the grid in place and restores the initial player
func (b *Board) Reset() {
	clear(b.cells)
	b.player = Player{
		Pos:       core.Point{X: b.width / 2, Y: b.height / 2},
		Direction: core.Down,
		Length:    1,
		Status:    Alive,
	}
	b.PlaceApple()
}

// ageTrail advances every trail cell by one tick and drops those older than the snake
func (b *Board) ageTrail() {
	for i, c := range b.cells {
		if !c.IsTrail() {
			continue
		}
		age := c.TrailAge() + 1
		if age > b.player.Length {
			b.cells[i] = CellEmpty
		} else {
			b.cells[i] = TrailCell(age)
		}
	}
}
