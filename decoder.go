package asciink

import (
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"
)

const esc = 0x1b

// DecodeRuns scans text once, left to right, and splits it into styled
// runs. SGR sequences (CSI ... m) update a style accumulator; every other
// escape sequence is consumed and ignored. Malformed or truncated
// sequences at end of input are discarded silently, since terminal output
// is frequently cut off mid-sequence.
func DecodeRuns(text string) []StyledRun {
	var (
		runs []StyledRun
		cur  Style
		buf  strings.Builder
	)

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, StyledRun{Text: buf.String(), Style: cur})
			buf.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] != esc {
			r, size := utf8.DecodeRuneInString(text[i:])
			buf.WriteRune(r)
			i += size
			continue
		}

		next, params, isSGR := consumeEscape(text, i)
		if isSGR {
			// Snapshot the run under the old style before mutating.
			flush()
			cur.applySGR(params)
		}
		i = next
	}

	flush()
	return runs
}

// consumeEscape consumes one escape sequence starting at text[i] (which
// must be ESC). It returns the index just past the sequence, the raw
// parameter bytes, and whether the sequence was an SGR one.
func consumeEscape(text string, i int) (next int, params string, isSGR bool) {
	if i+1 >= len(text) {
		// Lone ESC at end of input.
		return len(text), "", false
	}

	switch text[i+1] {
	case '[':
		// CSI: parameter and intermediate bytes, then one final byte.
		j := i + 2
		for j < len(text) && text[j] >= 0x20 && text[j] <= 0x3f {
			j++
		}
		if j >= len(text) {
			return len(text), "", false
		}
		if text[j] == 'm' {
			return j + 1, text[i+2 : j], true
		}
		return j + 1, "", false

	case ']':
		// OSC: runs until BEL or ST.
		j := i + 2
		for j < len(text) {
			if text[j] == 0x07 {
				return j + 1, "", false
			}
			if text[j] == esc && j+1 < len(text) && text[j+1] == '\\' {
				return j + 2, "", false
			}
			j++
		}
		return len(text), "", false

	case '(', ')', '*', '+', '#', '%':
		// Charset designation and friends carry one more byte.
		if i+3 <= len(text) {
			return i + 3, "", false
		}
		return len(text), "", false

	default:
		return i + 2, "", false
	}
}

// applySGR applies one SGR parameter list to the accumulator.
// Unrecognized parameters are skipped without altering anything else.
func (s *Style) applySGR(raw string) {
	// Some emitters use ':' as the sub-parameter separator; treat both
	// the same. An empty parameter means 0 (reset), so "\x1b[m" and
	// "\x1b[;31m" behave like their explicit forms.
	params := strings.Split(strings.ReplaceAll(raw, ":", ";"), ";")

	for i := 0; i < len(params); i++ {
		n := 0
		if params[i] != "" {
			var err error
			n, err = strconv.Atoi(params[i])
			if err != nil {
				continue
			}
		}

		switch {
		case n == 0:
			*s = Style{}
		case n == 1:
			s.Flags |= CellFlagBold
		case n == 2:
			s.Flags |= CellFlagDim
		case n == 3:
			s.Flags |= CellFlagItalic
		case n == 4:
			s.Flags |= CellFlagUnderline
		case n == 7:
			s.Flags |= CellFlagReverse
		case n == 9:
			s.Flags |= CellFlagStrike
		case n == 22:
			s.Flags &^= CellFlagBold | CellFlagDim
		case n == 23:
			s.Flags &^= CellFlagItalic
		case n == 24:
			s.Flags &^= CellFlagUnderline
		case n == 27:
			s.Flags &^= CellFlagReverse
		case n == 29:
			s.Flags &^= CellFlagStrike
		case n >= 30 && n <= 37:
			s.Fg = &IndexedColor{Index: n - 30}
		case n == 39:
			s.Fg = nil
		case n >= 40 && n <= 47:
			s.Bg = &IndexedColor{Index: n - 40}
		case n == 49:
			s.Bg = nil
		case n >= 90 && n <= 97:
			s.Fg = &IndexedColor{Index: n - 90 + 8}
		case n >= 100 && n <= 107:
			s.Bg = &IndexedColor{Index: n - 100 + 8}
		case n == 38 || n == 48:
			c, consumed := parseExtendedColor(params[i+1:])
			if c == nil {
				// Malformed color spec; drop the rest of the list.
				return
			}
			if n == 38 {
				s.Fg = c
			} else {
				s.Bg = c
			}
			i += consumed
		}
	}
}

// parseExtendedColor parses the tail of a 38/48 sequence: "5;N" selects a
// 256-color palette entry, "2;R;G;B" a 24-bit color. Returns nil when the
// parameters do not form a valid color.
func parseExtendedColor(params []string) (color.Color, int) {
	if len(params) == 0 {
		return nil, 0
	}

	switch params[0] {
	case "5":
		if len(params) < 2 {
			return nil, 0
		}
		n, err := strconv.Atoi(params[1])
		if err != nil || n < 0 || n > 255 {
			return nil, 0
		}
		return &IndexedColor{Index: n}, 2

	case "2":
		if len(params) < 4 {
			return nil, 0
		}
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(params[1+i])
			if err != nil || n < 0 || n > 255 {
				return nil, 0
			}
			ch[i] = uint8(n)
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, 4

	default:
		return nil, 0
	}
}
