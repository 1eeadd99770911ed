// Package measure provides text measurement for text field layouts: one
// for terminal cells and one for pixel fonts.
package measure

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Cells measures text in terminal columns. Zero-width codepoints such as
// combining marks share the boundary of the codepoint before them.
type Cells struct {
	cond *runewidth.Condition
}

// NewCells returns a cell measurer. eastAsian widens ambiguous-width
// characters, matching terminals configured for CJK locales.
func NewCells(eastAsian bool) *Cells {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Cells{cond: cond}
}

func (c *Cells) Measure(text string) ([]float64, float64) {
	edges := make([]float64, 0, utf8.RuneCountInString(text)+1)
	x := 0
	edges = append(edges, 0)
	for _, r := range text {
		x += c.cond.RuneWidth(r)
		edges = append(edges, float64(x))
	}
	return edges, 1
}

// RuneWidth is the number of columns r occupies.
func (c *Cells) RuneWidth(r rune) int {
	return c.cond.RuneWidth(r)
}

// Face measures text in pixels using glyph advances and kerning from a font
// face.
type Face struct {
	face font.Face
}

func NewFace(face font.Face) *Face {
	return &Face{face: face}
}

func (f *Face) Measure(text string) ([]float64, float64) {
	edges := make([]float64, 0, utf8.RuneCountInString(text)+1)
	var x fixed.Int26_6
	prev := rune(-1)
	edges = append(edges, 0)
	for _, r := range text {
		if prev >= 0 {
			x += f.face.Kern(prev, r)
		}
		adv, ok := f.face.GlyphAdvance(r)
		if !ok {
			adv, _ = f.face.GlyphAdvance('�')
		}
		x += adv
		edges = append(edges, fixedToFloat(x))
		prev = r
	}
	return edges, fixedToFloat(f.face.Metrics().Height)
}

// Ascent is the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 {
	return fixedToFloat(f.face.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
