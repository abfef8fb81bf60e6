// Terminal rendering of a sim.Grid using tcell. Generalizes the teacher's
// fixed-rate ticker-plus-event-channel loop (screen.PollEvent fed into a
// buffered channel read alongside a time.Ticker) from a single-cursor
// typing game to a scrolling view over an arbitrary-sized grid.
package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quellsim/quellsim/sim"
)

const frameInterval = 33 * time.Millisecond // ~30 FPS

type tui struct {
	screen          tcell.Screen
	grid            *sim.Grid
	framesPerUpdate int
	frame           int
	paused          bool
	originX         int // top-left grid column currently visible
	originY         int // top-left grid row currently visible (screen space)
}

func newTUI(screen tcell.Screen, grid *sim.Grid, framesPerUpdate int) *tui {
	return &tui{screen: screen, grid: grid, framesPerUpdate: framesPerUpdate}
}

func (t *tui) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.tick()
			t.draw()
		}
	}
}

func (t *tui) tick() {
	if t.paused {
		return
	}
	t.frame++
	if t.frame%t.framesPerUpdate != 0 {
		return
	}
	sim.Tick(t.grid)
}

func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			t.paused = !t.paused
		case ev.Key() == tcell.KeyLeft:
			t.originX = max(0, t.originX-4)
		case ev.Key() == tcell.KeyRight:
			t.originX = min(max(0, t.grid.Width-1), t.originX+4)
		case ev.Key() == tcell.KeyUp:
			t.originY = max(0, t.originY-4)
		case ev.Key() == tcell.KeyDown:
			t.originY = min(max(0, t.grid.Height-1), t.originY+4)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *tui) draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	statusRow := rows - 1

	for row := 0; row < statusRow; row++ {
		gy := t.grid.Height - 1 - (t.originY + row)
		if gy < 0 || gy >= t.grid.Height {
			continue
		}
		for col := 0; col < cols; col++ {
			gx := t.originX + col
			if gx >= t.grid.Width {
				break
			}
			cell := t.grid.Get(gx, gy)
			if cell == nil {
				continue
			}
			style := tcell.StyleDefault.Foreground(colorFor(cell.ID))
			t.screen.SetContent(col, row, glyphFor(*cell), nil, style)
		}
	}

	t.drawStatus(statusRow)
	t.screen.Show()
}

func (t *tui) drawStatus(row int) {
	status := fmt.Sprintf(" %dx%d  origin (%d,%d)  %s  [space] pause  [arrows] scroll  [q] quit ",
		t.grid.Width, t.grid.Height, t.originX, t.originY, pausedLabel(t.paused))
	style := tcell.StyleDefault.Reverse(true)
	cols, _ := t.screen.Size()
	for i := 0; i < cols; i++ {
		ch := ' '
		if i < len(status) {
			ch = rune(status[i])
		}
		t.screen.SetContent(i, row, ch, nil, style)
	}
}

func pausedLabel(paused bool) string {
	if paused {
		return "PAUSED"
	}
	return "running"
}
