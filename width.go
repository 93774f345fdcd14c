package asciink

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of a rune: 0 for combining marks,
// 2 for CJK ideographs and emoji, 1 otherwise.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}
