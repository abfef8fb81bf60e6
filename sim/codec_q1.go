package sim

import (
	"strconv"
	"strings"
)

// ExportQ1 serializes g to the Q1 text format: a semicolon-delimited,
// run-length-collapsed sequence of "<base62 id><direction digit>" tokens,
// row-major, Y from 0 up, X left-to-right.
func ExportQ1(g *Grid) string {
	var b strings.Builder
	b.WriteString("Q1;")
	b.WriteString(encodeBase62(g.Width))
	b.WriteByte(';')
	b.WriteString(encodeBase62(g.Height))
	b.WriteByte(';')

	groups := groupRuns(g, q1Token)
	// A trailing run of empty cells need not be encoded: the decoder
	// leaves every cell past the last listed one empty by default.
	if n := len(groups); n > 0 && groups[n-1].token == "" {
		groups = groups[:n-1]
	}

	for _, grp := range groups {
		b.WriteString(grp.token)
		if grp.count > 1 {
			b.WriteByte('+')
			b.WriteString(encodeBase62(grp.count))
		}
		b.WriteByte(';')
	}

	return b.String()
}

func q1Token(cell *Cell) string {
	if cell == nil {
		return ""
	}
	return encodeBase62(int(cell.ID)) + strconv.Itoa(int(cell.Direction))
}

// decodeQ1Token parses one token. ok is false only for a structurally
// malformed token (bad base62 digits, missing direction digit); a
// well-formed token naming an out-of-catalog id or an out-of-range
// direction digit (4-9) parses fine but yields a nil cell, per the "silent
// omission" rule for those cases.
func decodeQ1Token(token string) (*Cell, bool) {
	if token == "" {
		return nil, true
	}
	idPart, dirDigit := token[:len(token)-1], token[len(token)-1]
	if dirDigit < '0' || dirDigit > '9' {
		return nil, false
	}
	id, ok := decodeBase62(idPart)
	if !ok {
		return nil, false
	}
	d := int(dirDigit - '0')
	if d >= 4 {
		return nil, true
	}
	if _, known := Catalog[CellID(id)]; !known {
		return nil, true
	}
	c := NewCell(CellID(id), NewDirection(d))
	return &c, true
}

func importQ1(width, height int, body string) (*Grid, error) {
	g := NewGrid(width, height)
	if body == "" {
		return g, nil
	}

	i := 0
	for _, group := range strings.Split(body, ";") {
		token, count := group, 1
		if pos := strings.IndexByte(group, '+'); pos >= 0 {
			token = group[:pos]
			n, ok := decodeBase62(group[pos+1:])
			if !ok {
				return nil, ErrMissingBody
			}
			count = n
		}
		cell, ok := decodeQ1Token(token)
		if !ok {
			return nil, ErrMissingBody
		}
		for k := 0; k < count && i < width*height; k++ {
			if cell != nil {
				x, y := i%width, i/width
				g.Set(x, y, *cell)
			}
			i++
		}
	}

	return g, nil
}
