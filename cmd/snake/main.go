package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/terminal"
	"golang.org/x/exp/rand"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/snake.log")
	seedFlag  = flag.Uint64("seed", 0, "Apple placement seed (0 = time based)")
	colorFlag = flag.String("color", "auto", "Color mode: auto, color, none")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	err := run(*seedFlag, *colorFlag)
	os.Exit(finish(err, logFile, os.Stderr))
}

// finish records the session outcome, closes the debug log and returns the process exit code
func finish(err error, logFile *os.File, stderr io.Writer) int {
	code := 0
	if err != nil {
		log.Printf("session failed: %v", err)
		fmt.Fprintf(stderr, "snake: %v\n", err)
		code = 1
	}
	if logFile != nil {
		logFile.Close()
	}
	return code
}

func run(seed uint64, colorMode string) error {
	term, err := terminal.Open()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	core.SetCrashTerminal(term)
	defer term.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	styles, err := resolveStyles(colorMode, term.Screen().Colors())
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	width, height := term.GridSize()
	board, err := engine.NewBoard(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	game := engine.NewGame(board, input.NewQueue())
	renderer := render.NewTerminalRenderer(term.Screen(), styles)

	ctx, stop := core.ShutdownContext(context.Background())
	defer stop()

	scheduler := engine.NewClockScheduler(
		game,
		term,
		renderer,
		engine.NewTimeProvider(),
		constants.TickInterval,
		constants.PollInterval,
	)

	log.Printf("session start: grid %dx%d, seed %d", width, height, seed)
	err = scheduler.Run(ctx)
	log.Printf("session end after %d ticks", scheduler.Ticks())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// resolveStyles picks the glyph palette for the color flag and the terminal's color count
func resolveStyles(mode string, colors int) (render.Styles, error) {
	switch mode {
	case "auto":
		if colors < 8 {
			return render.MonoStyles(), nil
		}
		return render.DefaultStyles(), nil
	case "color":
		return render.DefaultStyles(), nil
	case "none", "mono":
		return render.MonoStyles(), nil
	default:
		return render.Styles{}, fmt.Errorf("unknown color mode %q", mode)
	}
}
