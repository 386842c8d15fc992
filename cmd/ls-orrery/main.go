// Command ls-orrery is an interactive terminal 3D visualization of the
// solar system.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/camera"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/ui"
)

// CLI flags for headless mode
var (
	ephemMode     bool
	snapshotPath  string
	watchInterval time.Duration
	atOffset      time.Duration
)

const (
	defaultFPS = 30
	minFPS     = 5
	maxFPS     = 60
)

func main() {
	fps := flag.Int("fps", defaultFPS, "Simulation loop ticks per second")
	speed := flag.Float64("speed", 1.0, "Initial time speed factor")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&ephemMode, "ephem", false, "Print body ephemeris table instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 5s)")
	flag.DurationVar(&atOffset, "at", 0, "Simulation time offset for headless output (e.g., 24h)")
	flag.Parse()

	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg := sim.DefaultConfig()
	cfg.Speed = *speed
	cfg.TickRate = *fps
	mgr := sim.NewManager(body.Solar(), cfg)

	if ephemMode || snapshotPath != "" {
		runHeadless(ctx, mgr, logger.WithPrefix("headless"))
		return
	}

	cam := camera.NewController(*fps)
	model := ui.New(mgr, cam, logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go runSimLoop(ctx, mgr, p, logger.WithPrefix("simloop"))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runSimLoop advances the simulation clock at the configured tick rate and
// pushes snapshots into the TUI.
func runSimLoop(ctx context.Context, mgr *sim.Manager, p *tea.Program, logger *logging.Logger) {
	interval := time.Second / time.Duration(mgr.TickRate())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Sim loop shutting down")
			p.Quit()
			return
		case now := <-ticker.C:
			mgr.Advance(now.Sub(last))
			last = now
			p.Send(ui.FrameMsg{Snapshot: mgr.Snapshot()})
		}
	}
}

// runHeadless handles the ephemeris and snapshot-export modes without
// starting the TUI.
func runHeadless(ctx context.Context, mgr *sim.Manager, logger *logging.Logger) {
	mgr.Seek(atOffset.Seconds())
	logger.Debug("Headless output at sim time %s", sim.FormatSimTime(atOffset.Seconds()))
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		snap := mgr.Snapshot()

		if snapshotPath != "" {
			export := sim.ExportSnapshot(snap, time.Now())
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if ephemMode {
			sim.WriteEphemerisTable(os.Stdout, snap)
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: advance the clock by the interval each round.
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mgr.Advance(watchInterval)
			if isTTY {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
