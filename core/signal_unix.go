//go:build unix

package core

import (
	"context"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ShutdownContext returns a context cancelled when the process is asked to terminate.
// SIGINT is included for the window before the terminal enters raw mode.
func ShutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, unix.SIGTERM, unix.SIGHUP, unix.SIGINT)
}
