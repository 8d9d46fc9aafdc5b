package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/term-snake/input"
)

// KeySource is the non-blocking key poll of the terminal boundary
type KeySource interface {
	PollKey() (input.Code, bool)
}

// Renderer draws a snapshot
type Renderer interface {
	Render(snap Snapshot)
}

// ClockScheduler drives the game on a fixed cadence
// Each cycle polls keys into the input queue until the tick deadline, then runs exactly one tick and renders
// Empty polls sleep for the poll interval instead of spinning
type ClockScheduler struct {
	game     *Game
	keys     KeySource
	renderer Renderer
	clock    Clock

	tickInterval time.Duration
	pollInterval time.Duration

	nextTickDeadline time.Time
	tickCount        uint64
}

// NewClockScheduler creates a scheduler with the given tick and poll intervals
func NewClockScheduler(
	game *Game,
	keys KeySource,
	renderer Renderer,
	clock Clock,
	tickInterval time.Duration,
	pollInterval time.Duration,
) *ClockScheduler {
	return &ClockScheduler{
		game:         game,
		keys:         keys,
		renderer:     renderer,
		clock:        clock,
		tickInterval: tickInterval,
		pollInterval: pollInterval,
	}
}

// Ticks returns the number of ticks executed by Run
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.tickCount
}

// Run executes cycles until the game quits (nil) or ctx is cancelled (ctx.Err())
func (cs *ClockScheduler) Run(ctx context.Context) error {
	cs.renderer.Render(cs.game.Snapshot())
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	for {
		if err := cs.pollUntilDeadline(ctx); err != nil {
			return err
		}

		snap, running := cs.game.Tick()
		cs.tickCount++
		if !running {
			return nil
		}
		cs.renderer.Render(snap)

		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

		// Drop missed cycles instead of ticking in a burst
		now := cs.clock.Now()
		maxBehind := cs.tickInterval * 2
		if now.Sub(cs.nextTickDeadline) > maxBehind {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}
	}
}

// pollUntilDeadline buffers keys into the queue until the tick deadline passes
func (cs *ClockScheduler) pollUntilDeadline(ctx context.Context) error {
	queue := cs.game.Queue()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := cs.clock.Now()
		if !now.Before(cs.nextTickDeadline) {
			return nil
		}

		if code, ok := cs.keys.PollKey(); ok {
			queue.Push(code)
			continue
		}

		sleep := cs.nextTickDeadline.Sub(now)
		if sleep > cs.pollInterval {
			sleep = cs.pollInterval
		}
		cs.clock.Sleep(sleep)
	}
}
