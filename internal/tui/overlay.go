package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// composite places the popup on top of the base content at the given
// cell position, slicing the styled base lines around it. The base is
// extended with blank lines when the popup reaches past its bottom.
func composite(base, popup string, top, left int) string {
	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")

	popupW := widest(popupLines)
	width := widest(baseLines)
	if left+popupW > width {
		width = left + popupW
	}

	for len(baseLines) < top+len(popupLines) {
		baseLines = append(baseLines, "")
	}

	for i, popupLine := range popupLines {
		row := top + i
		baseLine := padTo(baseLines[row], width)
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+popupW, width)
		baseLines[row] = leftSlice + padTo(popupLine, popupW) + rightSlice
	}

	return strings.Join(baseLines, "\n")
}

// padTo pads a styled line with spaces to the given display width.
func padTo(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// widest returns the display width of the widest line.
func widest(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
