package sim

import (
	"errors"
	"strings"
)

// Exact error values every Import path returns; callers compare these by
// value, so nothing here may ever be wrapped.
var (
	ErrMissingType   = errors.New("missing type specifier")
	ErrMissingWidth  = errors.New("missing width")
	ErrMissingHeight = errors.New("missing height")
	ErrMissingBody   = errors.New("missing cell data")
	ErrUnknownCode   = errors.New("unknown code type")
	ErrInvalidBase64 = errors.New("invalid base64")
)

const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const base74Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!$%&+-.=?^{}"

func encodeBase62(n int) string {
	if n == 0 {
		return ""
	}
	var b []byte
	for n > 0 {
		b = append(b, base62Alphabet[n%62])
		n /= 62
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func decodeBase62(s string) (int, bool) {
	n := 0
	for _, r := range s {
		i := strings.IndexRune(base62Alphabet, r)
		if i < 0 {
			return 0, false
		}
		n = n*62 + i
	}
	return n, true
}

func decodeBase74Digit(r rune) (int, bool) {
	i := strings.IndexRune(base74Alphabet, r)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// header splits a "TAG;W;H;BODY" string into its four pieces, applying
// exactly the error classification import must surface. BODY is returned
// raw (it may itself contain semicolons, as Q1 bodies do).
func header(input string) (tag string, width, height int, body string, err error) {
	parts := strings.SplitN(strings.TrimSpace(input), ";", 4)
	if len(parts) == 0 || parts[0] == "" {
		return "", 0, 0, "", ErrMissingType
	}
	tag = parts[0]
	if len(parts) < 2 {
		return "", 0, 0, "", ErrMissingWidth
	}
	if len(parts) < 3 {
		return "", 0, 0, "", ErrMissingHeight
	}
	if len(parts) < 4 {
		return "", 0, 0, "", ErrMissingBody
	}

	switch tag {
	case "Q1", "Q2":
		w, ok := decodeBase62(parts[1])
		if !ok {
			return "", 0, 0, "", ErrMissingWidth
		}
		h, ok := decodeBase62(parts[2])
		if !ok {
			return "", 0, 0, "", ErrMissingHeight
		}
		width, height = w, h
	case "V3":
		w := 0
		for _, r := range parts[1] {
			d, ok := decodeBase74Digit(r)
			if !ok {
				return "", 0, 0, "", ErrMissingWidth
			}
			w = w*74 + d
		}
		h := 0
		for _, r := range parts[2] {
			d, ok := decodeBase74Digit(r)
			if !ok {
				return "", 0, 0, "", ErrMissingHeight
			}
			h = h*74 + d
		}
		width, height = w, h
	default:
		return "", 0, 0, "", ErrUnknownCode
	}
	if width == 0 {
		return "", 0, 0, "", ErrMissingWidth
	}
	if height == 0 {
		return "", 0, 0, "", ErrMissingHeight
	}

	return tag, width, height, parts[3], nil
}

// Import dispatches on the header tag (Q1, Q2, or V3) and decodes the
// matching body.
func Import(input string) (*Grid, error) {
	tag, width, height, body, err := header(input)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "Q1":
		return importQ1(width, height, body)
	case "Q2":
		return importQ2(width, height, body)
	case "V3":
		return importV3(width, height, body)
	default:
		return nil, ErrUnknownCode
	}
}

// cellGroup is one run-length-collapsed token shared by the Q1 and Q2
// encoders: a token string (empty for an empty cell) repeated count times.
type cellGroup struct {
	token string
	count int
}

// groupRuns walks a grid row-major (Y from 0 up, X left-to-right) and
// collapses adjacent equal tokens into runs, for either text codec's
// encoder.
func groupRuns(g *Grid, tokenOf func(cell *Cell) string) []cellGroup {
	var groups []cellGroup
	g.ForEach(func(x, y int, cell *Cell) {
		token := tokenOf(cell)
		if len(groups) > 0 && groups[len(groups)-1].token == token {
			groups[len(groups)-1].count++
			return
		}
		groups = append(groups, cellGroup{token: token, count: 1})
	})
	return groups
}
