package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/modwin/sched"
	"github.com/OpticalFlyer/modwin/station"
	"github.com/OpticalFlyer/modwin/term"
)

// runTerminal drives the station on the controlling terminal until the
// user quits or an interrupt arrives.
func runTerminal(st *station.Station, queue *sched.Queue, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	clicker := term.NewClicker(logger)
	if err := clicker.Init(); err != nil {
		// Non-fatal, the window works without sound
		logger.Warn("audio initialization failed", "err", err)
	}
	defer clicker.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewHost(screen, st.Window, queue, clicker, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
