package main

import (
	"log"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// handleEvent filters for key events; everything else is ignored.
// Returns false when the loop should terminate.
func (g *Game) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return g.handleKey(key)
}

// handleKey dispatches one keyboard command. Letters are case-insensitive.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlS:
		g.saveToFile()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		return false
	case 'r':
		g.grid.Restart()
		g.sounds.Restart()
	case 's':
		g.grid.SaveState()
		g.sounds.Save()
	case 'l':
		g.grid.LoadState()
	case 'p':
		g.grid.TogglePause()
		g.sounds.Pause()
	}
	return true
}

// saveToFile persists the grid to the target path. A failure is logged and
// the loop keeps running; the atomic write in the model guarantees the file
// is never left half written.
func (g *Game) saveToFile() {
	if err := g.grid.SaveToFile(g.savePath); err != nil {
		log.Printf("save to %s failed: %v", g.savePath, err)
		return
	}
	g.sounds.Save()
}
