package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/guildsim/internal/balance"
	"github.com/samdwyer/guildsim/internal/gamedata"
)

const (
	headerRows = 2
	footerRows = 2
)

var (
	titleStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	headerStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Reverse(true)
)

// Renderer draws a ranking onto a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws the ranking with the selected row highlighted and its floor
// history in the footer.
func (r *Renderer) Render(rep balance.Report, selected, offset int) {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	r.text(0, 0, fmt.Sprintf("Guild ranking  seed %d  floor cap %d", rep.Seed, rep.FloorCap), titleStyle)
	r.text(0, 1, fmt.Sprintf("%-4s %-40s %5s %8s %-10s", "#", "PARTY", "FLOOR", "SCALING", "STATUS"), headerStyle)

	rows := visibleRows(height)
	for i := 0; i < rows && offset+i < len(rep.Ranking); i++ {
		idx := offset + i
		r.row(headerRows+i, rep.Ranking[idx], idx == selected)
	}

	if selected >= 0 && selected < len(rep.Ranking) {
		e := rep.Ranking[selected]
		r.text(0, height-2, fmt.Sprintf("victories %d  fallbacks %d", e.TotalVictories, e.Fallbacks), headerStyle)
	}
	r.text(0, height-1, "up/down: select  q: quit", headerStyle)

	r.canvas.Show()
}

func (r *Renderer) row(y int, e balance.Entry, selected bool) {
	base := textStyle
	if selected {
		base = selectedStyle
	}

	x := r.text(0, y, fmt.Sprintf("%-4d ", e.Rank), base)
	party := x
	for i, name := range e.Composition {
		if i > 0 {
			x = r.text(x, y, ", ", base)
		}
		style := base
		if job, ok := gamedata.ParseJob(name); ok && !selected {
			style = style.Foreground(job.TCellColor())
		}
		x = r.text(x, y, name, style)
	}
	for x < party+41 {
		x = r.text(x, y, " ", base)
	}
	r.text(x, y, fmt.Sprintf("%5d %7.2fx %-10s", e.MaxFloorReached, e.FinalScaling, e.Status), base)
}

// text draws s at (x, y) and returns the column after it.
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func visibleRows(height int) int {
	return max(1, height-headerRows-footerRows)
}
