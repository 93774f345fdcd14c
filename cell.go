package asciink

import "image/color"

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint8

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagReverse
	CellFlagStrike
)

// Cell stores the character, colors, and formatting attributes for one
// grid position. A nil Fg or Bg means the theme default.
type Cell struct {
	Char  rune
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
}

// NewCell creates a cell initialized with a space character and default colors.
func NewCell() Cell {
	return Cell{Char: ' '}
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}
