// Command quellsim-view renders a cell-machine grid with Ebiten. It loads
// a grid from a wire-format file (any of Q1/Q2/V3, auto-detected by the
// header tag) or, absent one, scatters a random population across a fresh
// grid the way the teacher's SeedRandom populated a Wa-Tor world.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quellsim/quellsim/sim"
)

func main() {
	load := flag.String("load", "", "path to a file containing a Q1/Q2/V3 grid to load")
	width := flag.Int("width", 60, "grid width, when -load is not given")
	height := flag.Int("height", 40, "grid height, when -load is not given")
	density := flag.Float64("density", 0.15, "fraction of squares seeded with a random cell, when -load is not given")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the scatter population")
	speed := flag.Int("speed", 6, "ebiten frames per simulation tick (lower is faster)")
	flag.Parse()

	if *speed < 1 {
		log.Fatalf("speed must be >= 1, got %d", *speed)
	}

	var grid *sim.Grid
	if *load != "" {
		data, err := os.ReadFile(*load)
		if err != nil {
			log.Fatalf("reading %s: %v", *load, err)
		}
		grid, err = sim.Import(string(data))
		if err != nil {
			log.Fatalf("importing %s: %v", *load, err)
		}
	} else {
		if *width <= 0 || *height <= 0 {
			log.Fatalf("width/height must be > 0, got %dx%d", *width, *height)
		}
		grid = scatter(*width, *height, *density, rand.New(rand.NewSource(*seed)))
	}

	g := newGame(grid, *speed)
	ebiten.SetWindowSize(grid.Width*pixelScale, grid.Height*pixelScale)
	ebiten.SetWindowTitle(windowTitle(grid, grid.PresentIDs()))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// scatterable is the subset of the catalog plausible to drop at random:
// movers and obstacles that produce visible activity, excluding the
// structural-only ids (Ghost has no rotate/generate/move/trash hook).
var scatterable = []sim.CellID{
	sim.Wall, sim.Mover, sim.Puller, sim.Pullsher, sim.Generator,
	sim.RotatorCW, sim.RotatorCCW, sim.Push, sim.Slide, sim.Trash,
	sim.Mirror, sim.Speed, sim.Stone, sim.Replicator, sim.Sucker,
}

// scatter places a random cell at each square with probability density,
// mirroring the shuffle-then-place approach of the teacher's SeedRandom
// (here a simple independent Bernoulli trial per square, since this
// catalog has no fixed population counts to preserve).
func scatter(width, height int, density float64, rng *rand.Rand) *sim.Grid {
	g := sim.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() >= density {
				continue
			}
			id := scatterable[rng.Intn(len(scatterable))]
			dir := sim.NewDirection(rng.Intn(4))
			g.Set(x, y, sim.NewCell(id, dir))
		}
	}
	return g
}
