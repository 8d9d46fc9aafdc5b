package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
)

// Terminal owns the tcell screen and the goroutine reading its events
// PollKey never blocks; events are buffered by the poller until the game loop drains them
type Terminal struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// Open creates a terminal over the process's controlling tty
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an existing screen, typically a tcell.SimulationScreen in tests
func New(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		eventCh: make(chan tcell.Event, constants.KeyEventBufferSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init enters raw mode and starts the event poller
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return nil
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.running = true
	core.Go(t.pollLoop)
	return nil
}

// pollLoop reads screen events until the screen is finalized
func (t *Terminal) pollLoop() {
	defer close(t.doneCh)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case t.eventCh <- ev:
		case <-t.stopCh:
			return
		}
	}
}

// Fini stops the poller and restores the terminal, safe to call more than once
func (t *Terminal) Fini() {
	t.stopOnce.Do(func() {
		close(t.stopCh)

		t.mu.Lock()
		running := t.running
		t.running = false
		t.mu.Unlock()

		if running {
			// Fini unblocks PollEvent with a nil event
			t.screen.Fini()
			<-t.doneCh
		}
	})
}

// Screen returns the wrapped screen for rendering
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// GridSize returns the board dimensions that fit the screen, one cell per two columns
func (t *Terminal) GridSize() (width, height int) {
	w, h := t.screen.Size()
	return w / constants.CellColumns, h
}

// PollKey returns the next buffered key code without blocking
// Non-key events are consumed; resize resynchronizes the screen
func (t *Terminal) PollKey() (input.Code, bool) {
	for {
		select {
		case ev := <-t.eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if code, ok := TranslateKey(ev); ok {
					return code, true
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return input.CodeNone, false
		}
	}
}

// TranslateKey maps a tcell key event to an input code
func TranslateKey(ev *tcell.EventKey) (input.Code, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.CodeArrowUp, true
	case tcell.KeyDown:
		return input.CodeArrowDown, true
	case tcell.KeyLeft:
		return input.CodeArrowLeft, true
	case tcell.KeyRight:
		return input.CodeArrowRight, true
	case tcell.KeyEnter, tcell.KeyLF:
		return input.CodeEnter, true
	case tcell.KeyCtrlC:
		return input.CodeInterrupt, true
	case tcell.KeyRune:
		return input.RuneCode(ev.Rune()), true
	}
	return input.CodeNone, false
}
