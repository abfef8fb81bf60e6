package sim

import "testing"

func TestExportQ1MatchesSpecExample(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, NewCell(Mover, Right))

	got := ExportQ1(g)
	want := "Q1;2;1;10;"
	if got != want {
		t.Fatalf("ExportQ1() = %q, want %q", got, want)
	}
}

func TestImportQ1MatchesSpecExample(t *testing.T) {
	g, err := Import("Q1;2;1;10;")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	wantCell(t, g, 0, 0, Mover, Right)
	wantEmpty(t, g, 1, 0)
}

func TestQ1RoundTrip(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))
	g.Set(3, 0, NewCell(Push, Right))
	g.Set(2, 2, NewCell(RotatorCW, Right))

	out := ExportQ1(g)
	back, err := Import(out)
	if err != nil {
		t.Fatalf("Import(%q): %v", out, err)
	}
	if !g.Equal(back) {
		t.Errorf("Q1 round trip mismatch:\nexported: %q\ngot: %+v\nwant: %+v", out, back, g)
	}
}

func TestQ1EmptyGridRoundTrip(t *testing.T) {
	g := NewGrid(3, 3)
	out := ExportQ1(g)
	if out != "Q1;3;3;" {
		t.Fatalf("ExportQ1(empty) = %q, want %q", out, "Q1;3;3;")
	}
	back, err := Import(out)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !g.Equal(back) {
		t.Error("empty grid should round trip through Q1")
	}
}

func TestQ1ImportSilentlyOmitsUnknownCatalogID(t *testing.T) {
	// base62 "Z" decodes to a value far past the last catalog entry.
	g, err := Import("Q1;1;1;Z0;")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	wantEmpty(t, g, 0, 0)
}

func TestQ1ImportSilentlyOmitsOutOfRangeDirection(t *testing.T) {
	g, err := Import("Q1;1;1;19;")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	wantEmpty(t, g, 0, 0)
}

func TestQ1ImportRejectsMalformedToken(t *testing.T) {
	// "!" is not a base62 digit, so the id half of the token can't parse.
	if _, err := Import("Q1;1;1;!0;"); err != ErrMissingBody {
		t.Fatalf("Import with an invalid id digit: err = %v, want ErrMissingBody", err)
	}
}

func TestQ2RoundTrip(t *testing.T) {
	g := NewGrid(5, 2)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))
	g.Set(2, 0, NewCell(Push, Right))
	g.Set(4, 1, NewCell(Trash, Up))

	out := ExportQ2(g)
	back, err := Import(out)
	if err != nil {
		t.Fatalf("Import(%q): %v", out, err)
	}
	if !g.Equal(back) {
		t.Errorf("Q2 round trip mismatch:\nexported: %q\ngot: %+v\nwant: %+v", out, back, g)
	}
}

func TestQ2RoundTripLongRun(t *testing.T) {
	g := NewGrid(40, 1)
	for x := 0; x < g.Width; x++ {
		g.Set(x, 0, NewCell(Push, Right))
	}

	out := ExportQ2(g)
	back, err := Import(out)
	if err != nil {
		t.Fatalf("Import(%q): %v", out, err)
	}
	if !g.Equal(back) {
		t.Error("a long uniform run should round trip through Q2's run-length marker")
	}
}

func TestQ2ImportRejectsInvalidBase64(t *testing.T) {
	if _, err := Import("Q2;1;1;not valid base64!!"); err != ErrInvalidBase64 {
		t.Fatalf("err = %v, want ErrInvalidBase64", err)
	}
}

func TestV3DecodesLiteralCell(t *testing.T) {
	// Rune '6' packs d=6: v3Table[(6/2)%9] == Mover, direction d/18 == Right.
	g, err := Import("V3;1;1;6")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	wantCell(t, g, 0, 0, Mover, Right)
}

func TestV3DecodesAirGap(t *testing.T) {
	airRune := string(base74Alphabet[72])
	g, err := Import("V3;1;1;" + airRune)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	wantEmpty(t, g, 0, 0)
}

func TestV3ShortBackrefRepeatsPriorCell(t *testing.T) {
	// "6" decodes one Mover(Right); ")00" replays it once more (o=0, l=0).
	g, err := Import("V3;2;1;6)00")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	wantCell(t, g, 0, 0, Mover, Right)
	wantCell(t, g, 1, 0, Mover, Right)
}

func TestV3RejectsMalformedBackref(t *testing.T) {
	if _, err := Import("V3;1;1;)00"); err != ErrMissingBody {
		t.Fatalf("a backref with nothing to reference should fail, got err = %v", err)
	}
}

func TestImportHeaderErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrMissingType},
		{"missing width", "Q1", ErrMissingWidth},
		{"missing height", "Q1;2", ErrMissingHeight},
		{"missing body", "Q1;2;1", ErrMissingBody},
		{"unknown tag", "XX;2;1;", ErrUnknownCode},
		{"non-numeric width", "Q1;!!;1;", ErrMissingWidth},
		{"non-numeric height", "Q1;2;!!;", ErrMissingHeight},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Import(c.input); err != c.want {
				t.Errorf("Import(%q) err = %v, want %v", c.input, err, c.want)
			}
		})
	}
}
