package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/stream"
	"github.com/sheikhrachel/go-life/utils"
)

const streamPath = "/ws"

// simulation holds the state of one run: the current grid and the boundary
// policy chosen before the first tick
type simulation struct {
	config     utils.Config
	grid       *model.Grid
	wrap       bool
	generation int
	pool       *model.GridPool
	renderer   *model.TerminalRenderer
	hub        *stream.Hub
	stats      *utils.Stats
	log        *utils.Logger
	out        io.Writer
}

// run drives the interactive session until the user quits, input ends or ctx is cancelled
func run(
	ctx context.Context,
	config utils.Config,
	in io.Reader,
	out io.Writer,
	stats *utils.Stats,
	log *utils.Logger,
) error {
	prompter := utils.NewPrompter(in, out)
	welcomeMessage(out)

	grid, err := promptForGrid(prompter, config.Alive())
	if err != nil {
		return err
	}

	wrap, err := prompter.GetYesOrNo("Should the simulation wrap around the grid?")
	if err != nil {
		return err
	}

	sim := newSimulation(config, grid, wrap, out, stats, log)
	defer func() { model.GridToPool(sim.grid, sim.pool) }()

	if config.StreamAddr != "" {
		stopStream, err := sim.startStream(ctx, config.StreamAddr)
		if err != nil {
			return err
		}
		defer stopStream()
	}

	if err = sim.show(); err != nil {
		return err
	}

	for {
		choice, err := prompter.AnimationType()
		if err != nil {
			return err
		}

		switch choice {
		case utils.ChoiceQuit:
			return nil
		case utils.ChoiceAnimate:
			frames, err := prompter.GetInteger("How many frames?")
			if err != nil {
				return err
			}
			if err = sim.animate(ctx, frames); err != nil {
				return err
			}
		case utils.ChoiceTick:
			sim.step()
			if err = sim.show(); err != nil {
				return err
			}
		}
	}
}

func newSimulation(
	config utils.Config,
	grid *model.Grid,
	wrap bool,
	out io.Writer,
	stats *utils.Stats,
	log *utils.Logger,
) *simulation {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid.UpdateHistory()
	stats.Update(0, grid.CountLivingCells(), 0)

	return &simulation{
		config:   config,
		grid:     grid,
		wrap:     wrap,
		pool:     pool,
		renderer: &model.TerminalRenderer{Out: out, Alive: config.Alive(), Dead: config.Dead()},
		stats:    stats,
		log:      log,
		out:      out,
	}
}

// welcomeMessage explains what the program does
func welcomeMessage(out io.Writer) {
	fmt.Fprint(out, "Welcome to the Game of Life,\n"+
		"a simulation of the lifecycle of a bacteria colony.\n"+
		"Cells live and die by the following rules:\n"+
		"- A cell with 1 or fewer neighbors dies.\n"+
		"- Locations with 2 neighbors remain stable.\n"+
		"- Locations with 3 neighbors will create life.\n"+
		"- A cell with 4 or more neighbors dies.\n\n")
}

// promptForGrid asks for a grid file until one loads
func promptForGrid(p *utils.Prompter, alive byte) (*model.Grid, error) {
	var grid *model.Grid
	_, err := p.PromptUntil("Grid input file name?", func(name string) error {
		g, err := model.LoadGrid(strings.TrimSpace(name), alive)
		if err != nil {
			return err
		}
		grid = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grid, nil
}

// step advances the grid by one generation and swaps it in
func (s *simulation) step() {
	start := time.Now()
	next := s.grid.NextGeneration(s.config, s.wrap, s.pool)
	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
	s.grid.UpdateHistory()
	s.stats.Update(s.generation, s.grid.CountLivingCells(), time.Since(start))
}

// show prints the current generation and publishes it to viewers
func (s *simulation) show() error {
	if err := s.renderer.Display(s.grid); err != nil {
		return errors.Wrap(err, "[simulation.show] failed to render grid")
	}
	if s.config.ShowStatus {
		displayGameStatus(s.out, s.generation, s.grid)
	}
	s.publish()
	return nil
}

// animate shows frames generations with a clear and pause before each
func (s *simulation) animate(ctx context.Context, frames int) error {
	fmt.Fprintf(s.out, "(%d new generations are shown, with screen clear and %d ms pause before each)\n",
		frames, s.config.FrameDelay.Milliseconds())

	if err := sleepContext(ctx, s.config.IntroPause); err != nil {
		return err
	}

	for range frames {
		if err := s.renderer.Clear(); err != nil {
			s.log.Warn("failed to clear console: %v", err)
		}
		s.step()
		if err := s.show(); err != nil {
			return err
		}
		if err := sleepContext(ctx, s.config.FrameDelay); err != nil {
			return err
		}
	}
	return nil
}

// displayGameStatus shows the generation, population and whether the pattern settled
func displayGameStatus(out io.Writer, generation int, grid *model.Grid) {
	living := grid.CountLivingCells()

	status := "Active"
	switch {
	case living == 0:
		status = "Extinct"
	case grid.IsStagnant():
		status = "Stable"
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Status: %s\n", generation, living, status)
}

func (s *simulation) publish() {
	if s.hub == nil {
		return
	}
	frame := stream.NewFrame(s.generation, s.grid, s.wrap, s.config.Alive(), s.config.Dead())
	if err := s.hub.Publish(frame); err != nil {
		s.log.Warn("%v", err)
	}
}

// startStream serves generations to websocket viewers at addr until the returned stop is called
func (s *simulation) startStream(ctx context.Context, addr string) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "[startStream] failed to listen on %s", addr)
	}

	s.hub = stream.NewHub(s.log)
	mux := http.NewServeMux()
	mux.HandleFunc(streamPath, s.hub.ServeWS)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.hub.Run(ctx)
		return nil
	})
	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "[startStream] server stopped")
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		return srv.Shutdown(shutdownCtx)
	})

	s.log.Info("streaming generations on ws://%s%s", ln.Addr(), streamPath)

	return func() {
		cancel()
		if err := eg.Wait(); err != nil {
			s.log.Warn("stream shutdown: %v", err)
		}
	}, nil
}

// sleepContext pauses for d unless ctx ends first
func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
