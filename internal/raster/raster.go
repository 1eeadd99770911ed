// Package raster paints a text field into an image with a pixel font. It
// drives the same measure, layout and paint path as the terminal input,
// which makes it a headless check of the field's geometry.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kobzarvs/sevenguis/internal/config"
	"github.com/kobzarvs/sevenguis/internal/measure"
	"github.com/kobzarvs/sevenguis/internal/textfield"
)

const padding = 4

// Palette holds the colors the renderer needs, resolved to 8-bit RGBA.
type Palette struct {
	Surface             color.RGBA
	Error               color.RGBA
	Foreground          color.RGBA
	Placeholder         color.RGBA
	SelectionForeground color.RGBA
	SelectionBackground color.RGBA
	Composition         color.RGBA
}

// NewPalette reads hex colors from the theme. Entries that are not hex
// (named terminal colors, "default") fall back to the built-in theme.
func NewPalette(th config.Theme) Palette {
	def := config.Default().Theme
	pick := func(v, fallback string) color.RGBA {
		c, err := colorful.Hex(v)
		if err != nil {
			c, _ = colorful.Hex(fallback)
		}
		return color.RGBAModel.Convert(c.Clamped()).(color.RGBA)
	}
	return Palette{
		Surface:             pick(th.Surface, def.Surface),
		Error:               pick(th.Error, def.Error),
		Foreground:          pick(th.Foreground, def.Foreground),
		Placeholder:         pick(th.Placeholder, def.Placeholder),
		SelectionForeground: pick(th.SelectionForeground, def.SelectionForeground),
		SelectionBackground: pick(th.SelectionBackground, def.SelectionBackground),
		Composition:         pick(th.Composition, def.Composition),
	}
}

// Options control a single render.
type Options struct {
	// Width of the image in pixels; zero fits the content.
	Width    int
	Focused  bool
	Invalid  bool
	Revision uint64
}

type Renderer struct {
	face    font.Face
	measure *measure.Face
	palette Palette
}

// New returns a renderer for face. A nil face uses basicfont.Face7x13.
func New(face font.Face, p Palette) *Renderer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Renderer{face: face, measure: measure.NewFace(face), palette: p}
}

// Layout measures st for an image of the given width.
func (r *Renderer) Layout(st textfield.State, rev uint64, width int) *textfield.Layout {
	edges, lh := r.measure.Measure(st.Content)
	if width <= 0 {
		width = int(math.Ceil(edges[len(edges)-1])) + 2*padding + 2
	}
	height := int(math.Ceil(lh)) + 2*padding
	bounds := textfield.Rect{W: float64(width), H: float64(height)}
	return &textfield.Layout{
		Bounds:     bounds,
		Origin:     textfield.Point{X: padding, Y: padding},
		Edges:      edges,
		LineHeight: lh,
		Revision:   rev,
	}
}

// Render paints st and returns the image with the layout it was painted
// against.
func (r *Renderer) Render(st textfield.State, opts Options) (*image.RGBA, *textfield.Layout) {
	l := r.Layout(st, opts.Revision, opts.Width)
	img := image.NewRGBA(image.Rect(0, 0, int(l.Bounds.W), int(l.Bounds.H)))
	bg := r.palette.Surface
	if opts.Invalid {
		bg = r.palette.Error
	}
	fillRect(img, bg, img.Bounds())

	g := textfield.PaintState(st, l, opts.Focused)
	if g.HasSelection {
		fillRect(img, r.palette.SelectionBackground, toImageRect(g.Selection))
	}

	baseline := fixed.I(padding) + r.face.Metrics().Ascent
	if g.Placeholder {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(r.palette.Placeholder),
			Face: r.face,
			Dot:  fixed.Point26_6{X: fixed.I(padding), Y: baseline},
		}
		d.DrawString(st.Placeholder)
	} else {
		r.drawRunes(img, st, l, baseline)
	}

	if g.HasComposition {
		u := g.Composition
		u.Y = u.Bottom() - 1
		u.H = 1
		fillRect(img, r.palette.Composition, toImageRect(u))
	}
	if g.ShowCaret {
		fillRect(img, r.palette.Foreground, toImageRect(g.Caret))
	}
	return img, l
}

// drawRunes places each codepoint at its measured edge so selected runes
// can switch color without disturbing kerning.
func (r *Renderer) drawRunes(img *image.RGBA, st textfield.State, l *textfield.Layout, baseline fixed.Int26_6) {
	fg := image.NewUniform(r.palette.Foreground)
	selFg := image.NewUniform(r.palette.SelectionForeground)
	sel := st.Selection.Range
	d := font.Drawer{Dst: img, Face: r.face}
	i := 0
	for _, ch := range st.Content {
		d.Src = fg
		if i >= sel.Start && i < sel.End {
			d.Src = selFg
		}
		d.Dot = fixed.Point26_6{X: toFixed(l.X(i)), Y: baseline}
		d.DrawString(string(ch))
		i++
	}
}

// RenderField paints f and hands the layout back to it, so pointer input
// in image pixels hit-tests against what was drawn.
func (r *Renderer) RenderField(f *textfield.Field, opts Options) *image.RGBA {
	opts.Focused = f.Focused()
	opts.Revision = f.Revision()
	img, l := r.Render(f.State(), opts)
	f.SetLayout(l)
	return img
}

// EncodePNG renders st and writes it as PNG.
func (r *Renderer) EncodePNG(w io.Writer, st textfield.State, opts Options) error {
	img, _ := r.Render(st, opts)
	return png.Encode(w, img)
}

func fillRect(img draw.Image, c color.Color, r image.Rectangle) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func toImageRect(r textfield.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
