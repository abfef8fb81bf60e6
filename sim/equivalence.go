package sim

// LooksLike reports whether g and other have the same dimensions and every
// square is LooksLike-equal: same id, and direction equal modulo the id's
// rotational symmetry class. Used to verify V3 decodes, which only
// preserve direction up to symmetry.
func (g *Grid) LooksLike(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a := g.Get(x, y)
			b := other.Get(x, y)
			if (a == nil) != (b == nil) {
				return false
			}
			if a != nil && !a.LooksLike(*b) {
				return false
			}
		}
	}
	return true
}
