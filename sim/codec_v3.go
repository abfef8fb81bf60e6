package sim

// v3Table is the fixed 9-entry lookup V3 literal cells index into via
// n/2 mod 9.
var v3Table = [9]CellID{Generator, RotatorCW, RotatorCCW, Mover, Slide, Push, Wall, Enemy, Trash}

// importV3 decodes a V3 body: a string over the 74-rune alphabet where a
// literal rune packs a cell (or "air", a deliberate gap) and '(' / ')'
// introduce one of three back-reference forms that replay earlier
// decoded cells. V3 is decode-only; there is no ExportV3.
func importV3(width, height int, body string) (*Grid, error) {
	g := NewGrid(width, height)
	runes := []rune(body)
	var cellArray []*Cell

	pos := 0
	for pos < len(runes) {
		switch runes[pos] {
		case ')':
			if pos+2 >= len(runes) {
				return nil, ErrMissingBody
			}
			o, ok1 := decodeBase74Digit(runes[pos+1])
			l, ok2 := decodeBase74Digit(runes[pos+2])
			if !ok1 || !ok2 {
				return nil, ErrMissingBody
			}
			pos += 3
			if err := v3Backref(&cellArray, o, l+1); err != nil {
				return nil, err
			}

		case '(':
			pos++
			o, newPos, term, err := readV3Number(runes, pos)
			if err != nil {
				return nil, err
			}
			pos = newPos

			if term == ')' {
				pos++
				if pos >= len(runes) {
					return nil, ErrMissingBody
				}
				l, ok := decodeBase74Digit(runes[pos])
				if !ok {
					return nil, ErrMissingBody
				}
				pos++
				if err := v3Backref(&cellArray, o, l+1); err != nil {
					return nil, err
				}
			} else {
				// term == '(': a second multi-rune number, terminated by ')'.
				pos++
				l, newPos2, _, err := readV3Number(runes, pos)
				if err != nil {
					return nil, err
				}
				pos = newPos2
				if pos >= len(runes) || runes[pos] != ')' {
					return nil, ErrMissingBody
				}
				pos++
				if err := v3Backref(&cellArray, o, l+1); err != nil {
					return nil, err
				}
			}

		default:
			d, ok := decodeBase74Digit(runes[pos])
			if !ok {
				return nil, ErrMissingBody
			}
			pos++
			if d < 72 {
				id := v3Table[(d/2)%9]
				c := NewCell(id, NewDirection(d/18))
				cellArray = append(cellArray, &c)
			} else {
				cellArray = append(cellArray, nil)
			}
		}
	}

	for i, c := range cellArray {
		if i >= width*height {
			break
		}
		if c != nil {
			x, y := i%width, i/width
			g.Set(x, y, *c)
		}
	}

	return g, nil
}

// readV3Number reads a multi-rune base-74 number starting at pos, stopping
// at (without consuming) the first ')' or '(' it meets. Returns the value,
// the index of the terminator, and the terminator rune itself.
func readV3Number(runes []rune, pos int) (value, next int, term rune, err error) {
	v := 0
	for pos < len(runes) && runes[pos] != ')' && runes[pos] != '(' {
		d, ok := decodeBase74Digit(runes[pos])
		if !ok {
			return 0, 0, 0, ErrMissingBody
		}
		v = v*74 + d
		pos++
	}
	if pos >= len(runes) {
		return 0, 0, 0, ErrMissingBody
	}
	return v, pos, runes[pos], nil
}

// v3Backref replays count already-decoded cells (including ones produced
// earlier within this same replay, which is what lets a short
// back-reference express an arbitrarily long repeating run) starting
// o+1 cells back from the current end of arr.
func v3Backref(arr *[]*Cell, o, count int) error {
	start := len(*arr) - o - 1
	if start < 0 {
		return ErrMissingBody
	}
	for k := 0; k < count; k++ {
		*arr = append(*arr, (*arr)[start+k])
	}
	return nil
}
