package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/guildsim/internal/balance"
)

// Viewer is an interactive ranking browser.
type Viewer struct {
	term     Terminal
	renderer *Renderer
	report   balance.Report
	selected int
	offset   int
}

// NewViewer creates a viewer over a ranking.
func NewViewer(term Terminal, ranking *balance.Ranking) *Viewer {
	return &Viewer{
		term:     term,
		renderer: NewRenderer(term),
		report:   ranking.Report(),
	}
}

// Run draws the ranking and handles keys until the user quits or ctx ends.
// Cancellation wakes a blocked PollEvent with an interrupt event.
func (v *Viewer) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.term.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		_, height := v.term.Size()
		v.scroll(visibleRows(height))
		v.renderer.Render(v.report, v.selected, v.offset)

		switch ev := v.term.PollEvent().(type) {
		case *tcell.EventResize:
			v.term.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// handleKey applies a key press and reports whether the viewer keeps running.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(-1)
	case tcell.KeyDown:
		v.move(1)
	case tcell.KeyHome:
		v.selected = 0
	case tcell.KeyEnd:
		v.selected = max(0, len(v.report.Ranking)-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.move(-1)
		case 'j':
			v.move(1)
		}
	}
	return true
}

func (v *Viewer) move(delta int) {
	v.selected = min(max(0, v.selected+delta), max(0, len(v.report.Ranking)-1))
}

// scroll keeps the selected row inside the visible window.
func (v *Viewer) scroll(rows int) {
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+rows {
		v.offset = v.selected - rows + 1
	}
}
