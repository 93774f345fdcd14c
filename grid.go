package asciink

import "strings"

// TabWidth is the fixed tab stop interval, matching the terminal default.
const TabWidth = 8

// Grid stores a fixed rows x columns block of cells. Every position holds
// exactly one cell at all times. Writing past the last column wraps to
// the next row; writing past the last row discards input silently (the
// display shows a fixed block, it never scrolls).
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell

	// Write position.
	row  int
	col  int
	full bool
}

// NewGrid creates a grid with the given dimensions, every cell
// initialized to a space with default colors.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ConfigError{Reason: "grid dimensions must be positive"}
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	for i := range g.cells {
		g.cells[i] = make([]Cell, cols)
		for j := range g.cells[i] {
			g.cells[i][j] = NewCell()
		}
	}

	return g, nil
}

// Rows returns the grid height in character rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width in character columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Cell returns a pointer to the cell at (row, col).
// Returns nil if coordinates are out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return &g.cells[row][col]
}

// WriteRuns fills the grid from a decoded run sequence in reading order.
func (g *Grid) WriteRuns(runs []StyledRun) {
	for _, run := range runs {
		for _, r := range run.Text {
			g.writeRune(r, run.Style)
			if g.full {
				return
			}
		}
	}
}

func (g *Grid) writeRune(r rune, st Style) {
	switch r {
	case '\n':
		g.row++
		g.col = 0
		if g.row >= g.rows {
			g.full = true
		}
		return
	case '\r':
		g.col = 0
		return
	case '\t':
		g.expandTab(st)
		return
	}

	// Remaining control characters carry no glyph.
	if r < 0x20 || r == 0x7f {
		return
	}

	// Zero-width code points (combining marks) are dropped rather than
	// given a cell. Wide runes take two cells: the glyph followed by a
	// continuation space carrying the same style.
	w := runeWidth(r)
	if w == 0 {
		return
	}

	if g.col+w > g.cols {
		g.row++
		g.col = 0
		if g.row >= g.rows {
			g.full = true
			return
		}
	}

	g.cells[g.row][g.col] = Cell{
		Char:  r,
		Fg:    st.Fg,
		Bg:    st.Bg,
		Flags: st.Flags,
	}
	g.col++

	if w == 2 && g.col < g.cols {
		g.cells[g.row][g.col] = Cell{
			Char:  ' ',
			Fg:    st.Fg,
			Bg:    st.Bg,
			Flags: st.Flags,
		}
		g.col++
	}
}

// expandTab pads with spaces up to the next tab stop, carrying the
// current background. Tabs never wrap; they clamp at the last column.
func (g *Grid) expandTab(st Style) {
	target := (g.col/TabWidth + 1) * TabWidth
	if target > g.cols {
		target = g.cols
	}
	for g.col < target {
		g.cells[g.row][g.col] = Cell{
			Char:  ' ',
			Fg:    st.Fg,
			Bg:    st.Bg,
			Flags: st.Flags,
		}
		g.col++
	}
}

// LineContent returns the text of one row with trailing spaces removed.
// Returns "" for out-of-range rows.
func (g *Grid) LineContent(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}

	var sb strings.Builder
	for col := 0; col < g.cols; col++ {
		sb.WriteRune(g.cells[row][col].Char)
	}
	return strings.TrimRight(sb.String(), " ")
}
