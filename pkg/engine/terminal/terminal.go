// Package terminal reports the size of the controlling terminal and the
// width the ship display is laid out to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MaxRuleWidth caps separators and wrapped text so wide terminals keep
	// the status block next to the ship map.
	MaxRuleWidth = 72
	// MinRuleWidth keeps separators readable on very narrow terminals.
	MinRuleWidth = 20
)

// GetSize returns the width and height of the terminal on fd, or the
// defaults when fd is not a terminal.
func GetSize(fd int) (width, height int) {
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of standard output.
func GetWidth() int {
	width, _ := GetSize(int(os.Stdout.Fd()))
	return width
}

// RuleWidth clamps a terminal width to the range the display is drawn in.
func RuleWidth(width int) int {
	return max(MinRuleWidth, min(width, MaxRuleWidth))
}
