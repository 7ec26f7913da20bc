package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// Canvas is a fixed-size grid of styled terminal lines that blocks are
// painted onto. Blocks may lie partly or fully outside the canvas; only the
// visible part is drawn.
type Canvas struct {
	width  int
	height int
	rows   []string
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, rows: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.rows {
		c.rows[i] = blank
	}
	return c
}

// Paint draws block with its top-left corner at (x, y)
func (c *Canvas) Paint(x, y int, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= c.height {
			break
		}
		w := ansi.StringWidth(line)
		left := max(0, -x)
		right := min(w, c.width-x)
		if left >= right {
			continue
		}
		seg := ansi.Cut(line, left, right)
		before := ansi.Cut(c.rows[row], 0, x+left)
		after := ansi.Cut(c.rows[row], x+right, c.width)
		c.rows[row] = before + seg + sgrReset + after
	}
}

// String returns the canvas as newline separated rows
func (c *Canvas) String() string {
	return strings.Join(c.rows, "\n")
}

// fit pads or truncates s to exactly width columns and height lines
func fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
