// Command quellsim-tui renders a cell-machine grid in the terminal with
// tcell. Like cmd/quellsim-view it loads a grid via -load or scatters a
// random one, but drives a tcell.Screen instead of an ebiten.Game.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/quellsim/quellsim/sim"
)

func main() {
	load := flag.String("load", "", "path to a file containing a Q1/Q2/V3 grid to load")
	width := flag.Int("width", 200, "grid width, when -load is not given")
	height := flag.Int("height", 120, "grid height, when -load is not given")
	density := flag.Float64("density", 0.15, "fraction of squares seeded with a random cell, when -load is not given")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the scatter population")
	speed := flag.Int("speed", 4, "frames per simulation tick (lower is faster)")
	flag.Parse()

	if *speed < 1 {
		fmt.Fprintf(os.Stderr, "speed must be >= 1, got %d\n", *speed)
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "quellsim-tui requires a terminal (stdout is not a tty)")
		os.Exit(1)
	}

	var grid *sim.Grid
	if *load != "" {
		data, err := os.ReadFile(*load)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", *load, err)
			os.Exit(1)
		}
		grid, err = sim.Import(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "importing %s: %v\n", *load, err)
			os.Exit(1)
		}
	} else {
		if *width <= 0 || *height <= 0 {
			fmt.Fprintf(os.Stderr, "width/height must be > 0, got %dx%d\n", *width, *height)
			os.Exit(1)
		}
		grid = scatter(*width, *height, *density, rand.New(rand.NewSource(*seed)))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "initializing terminal screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	newTUI(screen, grid, *speed).run()
}

// scatterable mirrors cmd/quellsim-view's choice of catalog ids plausible
// to drop at random.
var scatterable = []sim.CellID{
	sim.Wall, sim.Mover, sim.Puller, sim.Pullsher, sim.Generator,
	sim.RotatorCW, sim.RotatorCCW, sim.Push, sim.Slide, sim.Trash,
	sim.Mirror, sim.Speed, sim.Stone, sim.Replicator, sim.Sucker,
}

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
