package main

import (
	"image/color"

	"github.com/quellsim/quellsim/sim"
)

// colBg is the grid's background color, left empty between cells.
var colBg = color.RGBA{20, 24, 32, 255}

// palette maps each catalog id to the fill color drawn for it. Colors are
// grouped loosely by role (movers warm, generators green, obstacles gray,
// hazards red) rather than assigned at random, so a screenful of cells
// reads as a texture instead of noise.
var palette = map[sim.CellID]color.RGBA{
	sim.Wall:              {110, 110, 120, 255},
	sim.Mover:             {255, 200, 90, 255},
	sim.Puller:            {255, 160, 60, 255},
	sim.Pullsher:          {255, 130, 40, 255},
	sim.Generator:         {100, 220, 120, 255},
	sim.RotatorCW:         {90, 180, 255, 255},
	sim.RotatorCCW:        {90, 140, 255, 255},
	sim.Orientator:        {130, 110, 255, 255},
	sim.Push:              {200, 200, 210, 255},
	sim.Slide:             {170, 170, 200, 255},
	sim.Trash:             {60, 60, 70, 255},
	sim.Enemy:             {230, 40, 40, 255},
	sim.Mirror:            {210, 180, 255, 255},
	sim.CrossMirror:       {190, 150, 255, 255},
	sim.TrashMover:        {230, 90, 60, 255},
	sim.Speed:             {255, 240, 120, 255},
	sim.Movler:            {255, 210, 110, 255},
	sim.OneDir:            {180, 220, 255, 255},
	sim.SlideWall:         {140, 140, 160, 255},
	sim.GeneratorCW:       {90, 220, 150, 255},
	sim.GeneratorCCW:      {70, 220, 170, 255},
	sim.TrashPuller:       {230, 110, 70, 255},
	sim.Ghost:             {80, 80, 90, 160},
	sim.Stone:             {150, 120, 90, 255},
	sim.Replicator:        {120, 230, 230, 255},
	sim.Sucker:            {255, 170, 200, 255},
	sim.GeneratorCross:    {60, 220, 110, 255},
	sim.Mailbox:           {220, 190, 120, 255},
	sim.PostOffice:        {200, 160, 90, 255},
	sim.PhysicalGenerator: {80, 200, 100, 255},
	sim.Rotator180:        {150, 120, 255, 255},
	sim.Tunnel:            {80, 230, 210, 255},
	sim.FixedPullsher:     {255, 110, 30, 255},
}

func colorFor(id sim.CellID) color.RGBA {
	if c, ok := palette[id]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255} // unmistakable: a catalog entry with no assigned color
}
