package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/vector"

	"github.com/quellsim/quellsim/sim"
)

// buildArrowGlyphs rasterizes one small triangular arrow per Direction at
// the given cell pixel size, used to paint a facing indicator over a
// directional cell's fill color. Right is the base triangle (tip pointing
// along +X); the other three are the same path rotated by quarter turns.
func buildArrowGlyphs(cellSize int) [4]*ebiten.Image {
	var glyphs [4]*ebiten.Image
	for d := sim.Right; d <= sim.Up; d++ {
		glyphs[d] = rasterizeArrow(cellSize, d)
	}
	return glyphs
}

func rasterizeArrow(size int, dir sim.Direction) *ebiten.Image {
	r := vector.NewRasterizer(size, size)

	// A triangle pointing along +X (Right), centered in the cell, rotated
	// to the requested direction before rasterizing.
	mid := float32(size) / 2
	tip := rotatePoint(mid+mid*0.6, mid, mid, mid, dir)
	backA := rotatePoint(mid-mid*0.3, mid-mid*0.35, mid, mid, dir)
	backB := rotatePoint(mid-mid*0.3, mid+mid*0.35, mid, mid, dir)

	r.MoveTo(tip.X, tip.Y)
	r.LineTo(backA.X, backA.Y)
	r.LineTo(backB.X, backB.Y)
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	tinted := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(tinted, tinted.Bounds(), image.NewUniform(color.Black), image.Point{}, mask, image.Point{}, draw.Over)

	return ebiten.NewImageFromImage(tinted)
}

type point struct{ X, Y float32 }

// rotatePoint rotates (x, y) about (cx, cy) by dir's quarter-turn amount,
// in screen space (Y grows downward): the Down glyph points down the screen
// and the Up glyph up it. Draw flips grid rows, so a Y-up grid direction
// faces the same way on screen and indexes the glyph table directly.
func rotatePoint(x, y, cx, cy float32, dir sim.Direction) point {
	dx, dy := x-cx, y-cy
	switch dir {
	case sim.Right:
		return point{cx + dx, cy + dy}
	case sim.Down:
		return point{cx - dy, cy + dx}
	case sim.Left:
		return point{cx - dx, cy - dy}
	case sim.Up:
		return point{cx + dy, cy - dx}
	default:
		return point{cx + dx, cy + dy}
	}
}
