package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/input"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := New(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

// waitKey polls until a key arrives from the poller goroutine
func waitKey(t *testing.T, term *Terminal) input.Code {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if code, ok := term.PollKey(); ok {
			return code
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for key")
	return input.CodeNone
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   input.Code
		wantOK bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.CodeArrowUp, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.CodeArrowDown, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.CodeArrowLeft, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.CodeArrowRight, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.CodeEnter, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.CodeInterrupt, true},
		{"rune q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.RuneCode('q'), true},
		{"rune comma", tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), input.RuneCode(','), true},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), input.CodeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.ev)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("TranslateKey = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPollKeyNonBlocking(t *testing.T) {
	term, _ := newSimTerminal(t, 40, 20)

	done := make(chan struct{})
	go func() {
		term.PollKey()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PollKey blocked with no pending input")
	}
}

func TestPollKeyDeliversInjectedKeys(t *testing.T) {
	term, screen := newSimTerminal(t, 40, 20)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'e', tcell.ModNone)

	if got := waitKey(t, term); got != input.CodeArrowLeft {
		t.Errorf("first key = %d, want CodeArrowLeft", got)
	}
	if got := waitKey(t, term); got != input.RuneCode('e') {
		t.Errorf("second key = %d, want 'e'", got)
	}
}

func TestPollKeySkipsUnmappedKeys(t *testing.T) {
	term, screen := newSimTerminal(t, 40, 20)

	screen.InjectKey(tcell.KeyF5, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if got := waitKey(t, term); got != input.RuneCode('q') {
		t.Errorf("key = %d, want 'q'", got)
	}
}

func TestGridSizeHalvesColumns(t *testing.T) {
	term, _ := newSimTerminal(t, 81, 24)

	w, h := term.GridSize()
	if w != 40 || h != 24 {
		t.Errorf("GridSize = (%d, %d), want (40, 24)", w, h)
	}
}

func TestFiniIdempotent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := New(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	term.Fini()
	term.Fini()
}

func TestFiniWithoutInit(t *testing.T) {
	term := New(tcell.NewSimulationScreen("UTF-8"))
	term.Fini()
}
