package measure

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/kobzarvs/sevenguis/internal/textfield"
)

func TestCellsMeasure(t *testing.T) {
	tests := []struct {
		text string
		want []float64
	}{
		{"", []float64{0}},
		{"abc", []float64{0, 1, 2, 3}},
		{"日本", []float64{0, 2, 4}},
		{"éx", []float64{0, 1, 1, 2}},
	}
	c := NewCells(false)
	for _, tt := range tests {
		edges, lh := c.Measure(tt.text)
		if lh != 1 {
			t.Fatalf("line height = %v, want 1", lh)
		}
		if len(edges) != len(tt.want) {
			t.Fatalf("Measure(%q) = %v, want %v", tt.text, edges, tt.want)
		}
		for i := range edges {
			if edges[i] != tt.want[i] {
				t.Fatalf("Measure(%q) = %v, want %v", tt.text, edges, tt.want)
			}
		}
	}
}

func TestCellsEastAsianAmbiguous(t *testing.T) {
	if w := NewCells(false).RuneWidth('±'); w != 1 {
		t.Fatalf("narrow width = %d, want 1", w)
	}
	if w := NewCells(true).RuneWidth('±'); w != 2 {
		t.Fatalf("east asian width = %d, want 2", w)
	}
}

func TestFaceMeasure(t *testing.T) {
	f := NewFace(basicfont.Face7x13)
	edges, lh := f.Measure("abc")
	want := []float64{0, 7, 14, 21}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges = %v, want %v", edges, want)
		}
	}
	if lh != 13 {
		t.Fatalf("line height = %v, want 13", lh)
	}
	if f.Ascent() != 11 {
		t.Fatalf("ascent = %v, want 11", f.Ascent())
	}
}

func TestCellLayoutHitTest(t *testing.T) {
	c := NewCells(false)
	l := textfield.NewLayout(c, "a日b", 0, textfield.Rect{W: 20, H: 1}, textfield.Point{})
	if got := l.OffsetAt(textfield.Point{X: 3, Y: 0}); got != 2 {
		t.Fatalf("OffsetAt = %d, want 2", got)
	}
	if got := l.OffsetAt(textfield.Point{X: 2, Y: 0}); got != 1 {
		t.Fatalf("OffsetAt = %d, want 1", got)
	}
}
