package engine

import (
	"log"

	"github.com/lixenwraith/term-snake/input"
)

// Game is the session object: board, pending input and the tick counter
// All mutation goes through Tick
type Game struct {
	board *Board
	queue *input.Queue
	keys  input.KeyTable
	ticks uint64
}

// NewGame creates a game over board fed by queue
func NewGame(board *Board, queue *input.Queue) *Game {
	return &Game{
		board: board,
		queue: queue,
		keys:  input.DefaultKeyTable(),
	}
}

// Board returns the game board
func (g *Game) Board() *Board {
	return g.board
}

// Queue returns the input queue the key poller writes to
func (g *Game) Queue() *input.Queue {
	return g.queue
}

// Ticks returns the number of ticks executed
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Snapshot returns the current renderable state
func (g *Game) Snapshot() Snapshot {
	return g.board.snapshot(g.ticks)
}

// Tick executes one simulation step and returns false when the session must end
// Quit is handled before any movement so no partial tick is left behind
func (g *Game) Tick() (Snapshot, bool) {
	g.ticks++

	cmd := input.CommandNone
	if code, ok := g.queue.Pop(); ok {
		cmd = g.keys.Resolve(code)
	}

	p := &g.board.player
	if dir, ok := cmd.Direction(); ok && !dir.Opposite(p.Direction) {
		p.Direction = dir
	}

	switch cmd {
	case input.CommandRestart:
		if p.Status == Dead {
			g.board.Reset()
			log.Printf("game restarted at tick %d", g.ticks)
			return g.Snapshot(), true
		}
	case input.CommandQuit:
		log.Printf("quit at tick %d, length %d", g.ticks, p.Length)
		return g.Snapshot(), false
	}

	if p.Status == Alive {
		g.advance()
	}

	return g.Snapshot(), true
}

// advance moves the head one step, resolving apples and collisions
// The next cell is classified against the trail as it stood after the previous tick,
// so a length L snake keeps L trail cells behind its head.
// A fatal move leaves the board untouched.
func (g *Game) advance() {
	b := g.board
	p := &b.player

	next := p.Pos.Add(p.Direction)
	if !b.InBounds(next) {
		p.Status = Dead
		log.Printf("hit wall at %v, length %d", next, p.Length)
		return
	}

	cell := b.ValueAt(next)
	if cell.IsTrail() {
		p.Status = Dead
		log.Printf("hit own trail at %v, length %d", next, p.Length)
		return
	}

	ate := cell == CellApple
	if ate {
		p.Length++
		b.SetValue(next, CellEmpty)
	}

	b.ageTrail()
	b.SetValue(p.Pos, TrailCell(1))
	p.Pos = next

	if ate {
		b.PlaceApple()
	}

	// A failed placement leaves the board without apples, retry once per tick
	if b.AppleCount() == 0 {
		b.PlaceApple()
	}
}
