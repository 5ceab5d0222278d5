package model

import "github.com/gdamore/tcell/v2"

const aliveRune = '█'

// Renderer draws grids onto a tcell screen. tcell tracks the previous frame
// and only emits the cells that changed, so a full Draw neither clears the
// screen nor flickers.
type Renderer struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Draw renders the grid: a solid block for alive, a space for dead, one
// terminal cell per grid cell starting at the top-left corner. Draw never
// mutates grid state.
func (r *Renderer) Draw(g *Grid) {
	for y := range g.rows {
		for x := range g.cols {
			ch := ' '
			if g.cells[y][x] {
				ch = aliveRune
			}
			r.screen.SetContent(x, y, ch, nil, r.style)
		}
	}
	r.screen.Show()
}
