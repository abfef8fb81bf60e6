// Command quellsim-bench times a fixed number of ticks over a scattered
// grid, the way the teacher's main.go timed a fixed number of StepSeq/
// StepPar calls and printed elapsed wall time.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/quellsim/quellsim/sim"
)

func main() {
	width := flag.Int("width", 200, "grid width")
	height := flag.Int("height", 200, "grid height")
	density := flag.Float64("density", 0.2, "fraction of squares seeded with a random cell")
	steps := flag.Int("steps", 200, "number of ticks to run")
	workers := flag.Int("workers", runtime.NumCPU(), "goroutines for the present-id sweep")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	statsEvery := flag.Int("statsEvery", 0, "print population stats every N ticks (0 = never)")
	quiet := flag.Bool("quiet", false, "suppress console prints")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("width/height must be > 0, got %dx%d", *width, *height)
	}
	if *steps < 0 {
		log.Fatalf("steps must be >= 0, got %d", *steps)
	}
	if *workers < 1 {
		log.Fatalf("workers must be >= 1, got %d", *workers)
	}
	if *density < 0 || *density > 1 {
		log.Fatalf("density must be in [0, 1], got %v", *density)
	}

	grid := scatter(*width, *height, *density, rand.New(rand.NewSource(*seed)))

	if !*quiet {
		fmt.Printf("CFG width=%d height=%d density=%.3f steps=%d workers=%d seed=%d\n",
			*width, *height, *density, *steps, *workers, *seed)
	}

	start := time.Now()
	for i := 0; i < *steps; i++ {
		sim.Tick(grid)

		if !*quiet && *statsEvery > 0 && i%*statsEvery == 0 {
			present := sim.PresentIDsParallel(grid, *workers)
			fmt.Printf("tick=%05d types_present=%d\n", i, len(present))
		}
	}
	elapsed := time.Since(start)

	if !*quiet {
		fmt.Printf("steps=%d width=%d height=%d workers=%d time=%v ticks/sec=%.1f\n",
			*steps, *width, *height, *workers, elapsed, float64(*steps)/elapsed.Seconds())
	}
}

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
