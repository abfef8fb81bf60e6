package sim

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"io"
)

// q2Value packs a cell into the single non-negative integer Q2 encodes:
// 0 for empty, 1 + 4*id + direction otherwise.
func q2Value(cell *Cell) int {
	if cell == nil {
		return 0
	}
	return 1 + 4*int(cell.ID) + int(cell.Direction)
}

// bijectiveBase4Digits returns the digits (most significant first, each in
// 1..4) of n in bijective base 4. Used for the Q2 continuation-marker
// prefix, where a run of "digit" markers carries an arbitrarily large
// count before the terminating ordinary byte.
func bijectiveBase4Digits(n int) []int {
	var digits []int
	for n > 0 {
		n--
		digits = append(digits, n%4+1)
		n /= 4
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// encodeQ2Number appends the variable-width base-251 encoding of n (n>=0)
// to buf: zero or more continuation-marker bytes (0xfb-0xfe) carrying a
// bijective-base-4 prefix, followed by one ordinary byte (0x00-0xfa).
func encodeQ2Number(buf []byte, n int) []byte {
	prefix, rem := n/251, n%251
	for _, d := range bijectiveBase4Digits(prefix) {
		buf = append(buf, byte(0xfa+d))
	}
	return append(buf, byte(rem))
}

// decodeQ2Number reads one variable-width base-251 number starting at
// data[i], returning its value and the index just past it.
func decodeQ2Number(data []byte, i int) (value, next int, ok bool) {
	running := 0
	for i < len(data) && data[i] >= 0xfb && data[i] <= 0xfe {
		running = running*4 + int(data[i]-0xfa)
		i++
	}
	if i >= len(data) || data[i] == 0xff {
		return 0, 0, false
	}
	return running*251 + int(data[i]), i + 1, true
}

// ExportQ2 serializes g to the Q2 format: "Q2;W;H;" followed by a base64
// blob of the zlib-compressed, run-length-collapsed stream of per-cell
// numbers described in encodeQ2Number/decodeQ2Number.
func ExportQ2(g *Grid) string {
	var stream []byte
	for _, grp := range groupQ2Runs(g) {
		stream = encodeQ2Number(stream, grp.value)
		if grp.count > 1 {
			stream = append(stream, 0xff)
			stream = encodeQ2Number(stream, grp.count)
		}
	}

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	_, _ = w.Write(stream)
	_ = w.Close()

	var b bytes.Buffer
	b.WriteString("Q2;")
	b.WriteString(encodeBase62(g.Width))
	b.WriteByte(';')
	b.WriteString(encodeBase62(g.Height))
	b.WriteByte(';')
	b.WriteString(base64.StdEncoding.EncodeToString(compressed.Bytes()))
	return b.String()
}

type q2Group struct {
	value int
	count int
}

func groupQ2Runs(g *Grid) []q2Group {
	var groups []q2Group
	g.ForEach(func(x, y int, cell *Cell) {
		v := q2Value(cell)
		if len(groups) > 0 && groups[len(groups)-1].value == v {
			groups[len(groups)-1].count++
			return
		}
		groups = append(groups, q2Group{value: v, count: 1})
	})
	return groups
}

func importQ2(width, height int, body string) (*Grid, error) {
	g := NewGrid(width, height)
	if body == "" {
		return g, nil
	}

	compressed, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidBase64
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, ErrMissingBody
	}
	stream, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrMissingBody
	}

	i, pos := 0, 0
	for pos < len(stream) && i < width*height {
		value, next, ok := decodeQ2Number(stream, pos)
		if !ok {
			return nil, ErrMissingBody
		}
		pos = next

		count := 1
		if pos < len(stream) && stream[pos] == 0xff {
			n, next2, ok := decodeQ2Number(stream, pos+1)
			if !ok {
				return nil, ErrMissingBody
			}
			count = n
			pos = next2
		}

		for k := 0; k < count && i < width*height; k++ {
			placeQ2Value(g, i, width, value)
			i++
		}
	}

	return g, nil
}

// placeQ2Value sets the cell at linear index i (row-major, Y from 0 up) to
// the cell encoded by value, silently leaving the square empty if value
// decodes to an out-of-catalog id.
func placeQ2Value(g *Grid, i, width, value int) {
	if value == 0 {
		return
	}
	v := value - 1
	id := CellID(v / 4)
	dir := NewDirection(v % 4)
	if _, known := Catalog[id]; !known {
		return
	}
	x, y := i%width, i/width
	g.Set(x, y, NewCell(id, dir))
}
