package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lifeterm/golife/chime"
	"github.com/lifeterm/golife/model"
)

// newTestGame builds a Game with just the pieces key dispatch touches:
// no terminal session, silent sounds.
func newTestGame(t *testing.T, grid *model.Grid) *Game {
	t.Helper()
	return &Game{
		grid:     grid,
		sounds:   chime.NewPlayer(false),
		savePath: filepath.Join(t.TempDir(), "grid.data"),
	}
}

func mustGrid(t *testing.T, content string) *model.Grid {
	t.Helper()
	g, err := model.NewGridFromText(content)
	if err != nil {
		t.Fatalf("Failed to build grid from %q: %v", content, err)
	}
	return g
}

func cellsOf(g *model.Grid) [][]bool {
	cells := make([][]bool, g.GetHeight())
	for y := range cells {
		cells[y] = make([]bool, g.GetWidth())
		for x := range cells[y] {
			cells[y][x] = g.Get(x, y)
		}
	}
	return cells
}

func equalCells(a, b [][]bool) bool {
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestHandleKeyQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"Escape", keyEvent(tcell.KeyEscape, 0)},
		{"Ctrl+C", keyEvent(tcell.KeyCtrlC, 0)},
		{"Lowercase q", keyEvent(tcell.KeyRune, 'q')},
		{"Uppercase Q", keyEvent(tcell.KeyRune, 'Q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, mustGrid(t, "10\n01"))
			if g.handleKey(tt.ev) {
				t.Error("Expected the quit key to signal loop termination")
			}
		})
	}
}

func TestHandleKeyRestart(t *testing.T) {
	grid := model.NewGrid(20, 20, model.DefaultDensity)
	g := newTestGame(t, grid)
	before := cellsOf(grid)

	if !g.handleKey(keyEvent(tcell.KeyRune, 'r')) {
		t.Fatal("Expected the loop to keep running after restart")
	}
	if equalCells(before, cellsOf(grid)) {
		t.Error("Expected restart to produce a different random grid")
	}
}

func TestHandleKeyPauseToggles(t *testing.T) {
	g := newTestGame(t, mustGrid(t, "10\n01"))

	g.handleKey(keyEvent(tcell.KeyRune, 'p'))
	if !g.grid.IsPaused() {
		t.Error("Expected p to pause")
	}
	g.handleKey(keyEvent(tcell.KeyRune, 'P'))
	if g.grid.IsPaused() {
		t.Error("Expected a second toggle (case-insensitive) to unpause")
	}
}

func TestHandleKeySnapshotRoundTrip(t *testing.T) {
	grid := mustGrid(t, "010\n111\n010")
	g := newTestGame(t, grid)

	g.handleKey(keyEvent(tcell.KeyRune, 's'))
	saved := cellsOf(grid)

	grid.Step()
	if equalCells(saved, cellsOf(grid)) {
		t.Fatal("Expected Step to change the grid")
	}

	g.handleKey(keyEvent(tcell.KeyRune, 'l'))
	if !equalCells(saved, cellsOf(grid)) {
		t.Error("Expected l to restore the in-memory snapshot")
	}
}

func TestHandleKeySaveToFile(t *testing.T) {
	grid := mustGrid(t, "10\n01")
	g := newTestGame(t, grid)

	if !g.handleKey(keyEvent(tcell.KeyCtrlS, 0)) {
		t.Fatal("Expected the loop to keep running after a file save")
	}

	data, err := os.ReadFile(g.savePath)
	if err != nil {
		t.Fatalf("Expected Ctrl+S to write the save file: %v", err)
	}
	if string(data) != "10\n01\n" {
		t.Errorf("Expected %q in save file, got %q", "10\n01\n", string(data))
	}
}

func TestHandleKeySaveFailureKeepsRunning(t *testing.T) {
	g := newTestGame(t, mustGrid(t, "1"))
	g.savePath = filepath.Join(t.TempDir(), "no", "such", "dir", "grid.data")

	if !g.handleKey(keyEvent(tcell.KeyCtrlS, 0)) {
		t.Error("Expected a failed file save to leave the loop running")
	}
}

func TestHandleKeyUnknownIsNoop(t *testing.T) {
	grid := mustGrid(t, "010\n111\n010")
	g := newTestGame(t, grid)
	before := cellsOf(grid)

	if !g.handleKey(keyEvent(tcell.KeyRune, 'x')) {
		t.Error("Expected an unknown key to keep the loop running")
	}
	if !equalCells(before, cellsOf(grid)) {
		t.Error("Expected an unknown key to leave the grid unchanged")
	}
	if g.grid.IsPaused() {
		t.Error("Expected an unknown key to leave the pause state unchanged")
	}
}

func TestHandleEventIgnoresNonKeyEvents(t *testing.T) {
	grid := mustGrid(t, "10\n01")
	g := newTestGame(t, grid)
	before := cellsOf(grid)

	if !g.handleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("Expected a resize event to keep the loop running")
	}
	if !equalCells(before, cellsOf(grid)) {
		t.Error("Expected a resize event to leave the grid unchanged")
	}
}
