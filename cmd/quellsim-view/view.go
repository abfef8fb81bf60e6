// Graphical rendering of a sim.Grid using Ebiten. Generalizes the
// teacher's single ebiten.Game loop (grid -> pixel blocks, fixed frame
// divisor to throttle simulation speed) to the full 33-entry catalog,
// with a direction arrow drawn over every directional cell.
package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebvector "github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quellsim/quellsim/sim"
)

const pixelScale = 12 // pixels per grid cell

type game struct {
	grid            *sim.Grid
	framesPerUpdate int
	frame           int
	paused          bool
	arrows          [4]*ebiten.Image
}

func newGame(grid *sim.Grid, framesPerUpdate int) *game {
	return &game{
		grid:            grid,
		framesPerUpdate: framesPerUpdate,
		arrows:          buildArrowGlyphs(pixelScale),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	g.frame++
	if g.frame%g.framesPerUpdate != 0 {
		return nil
	}
	sim.Tick(g.grid)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			cell := g.grid.Get(x, y)
			if cell == nil {
				continue
			}
			// Grid row 0 is the bottom row (Y points up); the screen
			// origin is top-left, so flip Y when placing pixels.
			screenY := g.grid.Height - 1 - y
			px := float32(x * pixelScale)
			py := float32(screenY * pixelScale)

			ebvector.DrawFilledRect(screen, px, py, pixelScale, pixelScale, colorFor(cell.ID), false)

			if sim.Sides(cell.ID) > 1 {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(px), float64(py))
				screen.DrawImage(g.arrows[cell.Direction], op)
			}
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width * pixelScale, g.grid.Height * pixelScale
}

func windowTitle(grid *sim.Grid, present map[sim.CellID]struct{}) string {
	return fmt.Sprintf("quellsim-view | %dx%d | %d types present | space to pause",
		grid.Width, grid.Height, len(present))
}
