package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quellsim/quellsim/sim"
)

// palette maps each catalog id to its terminal foreground color, grouped
// by role the same way cmd/quellsim-view's palette is (movers warm,
// generators green, obstacles gray, hazards red), so the two front ends
// agree on what a cell type "looks like".
var palette = map[sim.CellID]tcell.Color{
	sim.Wall:              tcell.NewRGBColor(110, 110, 120),
	sim.Mover:             tcell.NewRGBColor(255, 200, 90),
	sim.Puller:            tcell.NewRGBColor(255, 160, 60),
	sim.Pullsher:          tcell.NewRGBColor(255, 130, 40),
	sim.Generator:         tcell.NewRGBColor(100, 220, 120),
	sim.RotatorCW:         tcell.NewRGBColor(90, 180, 255),
	sim.RotatorCCW:        tcell.NewRGBColor(90, 140, 255),
	sim.Orientator:        tcell.NewRGBColor(130, 110, 255),
	sim.Push:              tcell.NewRGBColor(200, 200, 210),
	sim.Slide:             tcell.NewRGBColor(170, 170, 200),
	sim.Trash:             tcell.NewRGBColor(60, 60, 70),
	sim.Enemy:             tcell.NewRGBColor(230, 40, 40),
	sim.Mirror:            tcell.NewRGBColor(210, 180, 255),
	sim.CrossMirror:       tcell.NewRGBColor(190, 150, 255),
	sim.TrashMover:        tcell.NewRGBColor(230, 90, 60),
	sim.Speed:             tcell.NewRGBColor(255, 240, 120),
	sim.Movler:            tcell.NewRGBColor(255, 210, 110),
	sim.OneDir:            tcell.NewRGBColor(180, 220, 255),
	sim.SlideWall:         tcell.NewRGBColor(140, 140, 160),
	sim.GeneratorCW:       tcell.NewRGBColor(90, 220, 150),
	sim.GeneratorCCW:      tcell.NewRGBColor(70, 220, 170),
	sim.TrashPuller:       tcell.NewRGBColor(230, 110, 70),
	sim.Ghost:             tcell.NewRGBColor(80, 80, 90),
	sim.Stone:             tcell.NewRGBColor(150, 120, 90),
	sim.Replicator:        tcell.NewRGBColor(120, 230, 230),
	sim.Sucker:            tcell.NewRGBColor(255, 170, 200),
	sim.GeneratorCross:    tcell.NewRGBColor(60, 220, 110),
	sim.Mailbox:           tcell.NewRGBColor(220, 190, 120),
	sim.PostOffice:        tcell.NewRGBColor(200, 160, 90),
	sim.PhysicalGenerator: tcell.NewRGBColor(80, 200, 100),
	sim.Rotator180:        tcell.NewRGBColor(150, 120, 255),
	sim.Tunnel:            tcell.NewRGBColor(80, 230, 210),
	sim.FixedPullsher:     tcell.NewRGBColor(255, 110, 30),
}

func colorFor(id sim.CellID) tcell.Color {
	if c, ok := palette[id]; ok {
		return c
	}
	return tcell.ColorFuchsia
}

// glyphFor returns the rune drawn for a cell: an arrow for anything with
// a visible facing, a solid block otherwise.
func glyphFor(cell sim.Cell) rune {
	if sim.Sides(cell.ID) <= 1 {
		return '█'
	}
	switch cell.Direction {
	case sim.Right:
		return '▶'
	case sim.Down:
		return '▼'
	case sim.Left:
		return '◀'
	case sim.Up:
		return '▲'
	default:
		return '█'
	}
}
