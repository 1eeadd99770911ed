package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// TextWidth is the number of cells text occupies.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate shortens text to at most width cells, ending in an ellipsis when
// anything was cut. Grapheme clusters are never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= width {
		return text
	}
	out := make([]byte, 0, len(text))
	used := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width-1 {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + "…"
}

// drawText writes text at (x, y), clipped to maxW cells, and returns the
// width drawn.
func drawText(s tcell.Screen, x, y, maxW int, text string, style tcell.Style) int {
	text = Truncate(text, maxW)
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			continue
		}
		s.SetContent(x+used, y, runes[0], runes[1:], style)
		used += w
	}
	return used
}

// drawCentered writes text centered in r on row y.
func drawCentered(s tcell.Screen, r Rect, y int, text string, style tcell.Style) {
	text = Truncate(text, r.W)
	w := TextWidth(text)
	drawText(s, r.X+(r.W-w)/2, y, r.W, text, style)
}
