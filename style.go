package asciink

import "image/color"

// Style is the attribute accumulator carried across a decode pass.
// Colors may be nil (theme default), *IndexedColor (0-255), or a concrete
// color.RGBA for 24-bit SGR sequences.
type Style struct {
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
}

// HasFlag returns true if the specified flag is set.
func (s Style) HasFlag(flag CellFlags) bool {
	return s.Flags&flag != 0
}

// StyledRun is a maximal run of characters sharing one style. Runs are
// immutable once emitted: the decoder snapshots the accumulator into
// Style, so later escape sequences never affect earlier runs.
type StyledRun struct {
	Text  string
	Style Style
}
