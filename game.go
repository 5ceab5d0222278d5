package main

import (
	"time"

	"github.com/lifeterm/golife/chime"
	"github.com/lifeterm/golife/model"
	"github.com/lifeterm/golife/term"
	"github.com/lifeterm/golife/utils"
)

// Game drives the simulation: it polls keyboard events without blocking,
// dispatches commands, and advances the grid at a fixed rate while running.
type Game struct {
	session    *term.Session
	grid       *model.Grid
	renderer   *model.Renderer
	sounds     *chime.Player
	stats      *utils.Stats
	savePath   string
	frameDelay time.Duration
}

func newGame(session *term.Session, grid *model.Grid, config utils.Config, savePath string) *Game {
	return &Game{
		session:    session,
		grid:       grid,
		renderer:   model.NewRenderer(session.Screen()),
		sounds:     chime.NewPlayer(config.Sound),
		stats:      utils.NewStats(),
		savePath:   savePath,
		frameDelay: config.FrameDelay(),
	}
}

// run is the control loop. Each iteration does a zero-wait poll of the event
// channel, dispatches at most one event, and then either advances a
// generation (running) or re-polls immediately (paused). The frame budget is
// a fixed sleep, not a frame-rate controller.
func (g *Game) run() {
	defer g.sounds.Close()

	events := g.session.Events()
	var (
		generation = 0
		lastFrame  = time.Now()
	)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !g.handleEvent(ev) {
				return
			}
		default:
			// No pending event
		}

		if g.grid.IsPaused() {
			continue
		}

		g.grid.Step()
		g.renderer.Draw(g.grid)

		generation++
		now := time.Now()
		g.stats.Update(generation, g.grid.CountLivingCells(), now.Sub(lastFrame))
		lastFrame = now

		time.Sleep(g.frameDelay)
	}
}
