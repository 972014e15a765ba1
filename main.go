package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"the-snake/game"
	"the-snake/ui/terminal"
	"the-snake/ui/window"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

type frontend interface {
	game.Display
	Close()
}

func main() {
	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend to play in: window or terminal")
	flag.IntVar(&cfg.TicksPerSecond, "tps", cfg.TicksPerSecond, "Game speed in ticks per second")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Board width in pixels")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Board height in pixels")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 seeds from the clock)")
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg); err != nil {
		glog.Errorf("snake: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	g, err := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	glog.V(1).Infof("session %s seeded with %d", g.UUID, cfg.Seed)

	f, err := open(cfg)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pacer := game.NewTickerPacer(cfg.TickInterval())
	defer pacer.Stop()

	return g.Run(ctx, f, pacer)
}

func open(cfg game.Config) (frontend, error) {
	switch cfg.Frontend {
	case game.FrontendTerminal:
		t, err := terminal.New(cfg.Grid())
		if err != nil {
			return nil, errors.Wrap(err, "open terminal")
		}
		return t, nil
	default:
		return window.New(cfg.Grid(), cfg.Title), nil
	}
}
