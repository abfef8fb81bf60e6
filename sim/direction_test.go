package sim

import "testing"

func TestDirectionRotateLeftRepeated(t *testing.T) {
	for d := Right; d <= Up; d++ {
		for _, k := range []int{0, 1, 2, 3, 4, 5, -1, -3} {
			got := d
			n := k
			for n < 0 {
				n += 4
			}
			for i := 0; i < n%4; i++ {
				got = got.RotateLeft()
			}
			want := d.Add(-k)
			if got != want {
				t.Errorf("RotateLeft applied %d times from %v = %v, want %v", k, d, got, want)
			}
		}
	}
}

func TestDirectionFlipInvolution(t *testing.T) {
	for d := Right; d <= Up; d++ {
		if got := d.Flip().Flip(); got != d {
			t.Errorf("Flip(Flip(%v)) = %v, want %v", d, got, d)
		}
	}
}

func TestDirectionAddWraps(t *testing.T) {
	cases := []struct {
		d     Direction
		delta int
		want  Direction
	}{
		{Right, 1, Down},
		{Up, 1, Right},
		{Right, -1, Up},
		{Right, 4, Right},
		{Right, -4, Right},
	}
	for _, c := range cases {
		if got := c.d.Add(c.delta); got != c.want {
			t.Errorf("%v.Add(%d) = %v, want %v", c.d, c.delta, got, c.want)
		}
	}
}

func TestDirectionSub(t *testing.T) {
	for a := Right; a <= Up; a++ {
		for b := Right; b <= Up; b++ {
			if got := a.Sub(b).Add(int(b)); got != a {
				t.Errorf("(%v.Sub(%v)).Add(%v) = %v, want %v", a, b, b, got, a)
			}
		}
	}
}

func TestDirectionShrink(t *testing.T) {
	cases := []struct {
		d      Direction
		radius uint8
		want   Direction
	}{
		{Right, 4, Right},
		{Down, 4, Down},
		{Left, 2, Right},
		{Up, 2, Down},
		{Left, 1, Right},
	}
	for _, c := range cases {
		if got := c.d.Shrink(c.radius); got != c.want {
			t.Errorf("%v.Shrink(%d) = %v, want %v", c.d, c.radius, got, c.want)
		}
	}
}

func TestDirectionVectorYUp(t *testing.T) {
	if dx, dy := Up.Vector(); dx != 0 || dy != 1 {
		t.Errorf("Up.Vector() = (%d,%d), want (0,1)", dx, dy)
	}
	if dx, dy := Down.Vector(); dx != 0 || dy != -1 {
		t.Errorf("Down.Vector() = (%d,%d), want (0,-1)", dx, dy)
	}
}
