// Package text is the font collaborator: glyph metrics and a white-coverage
// glyph atlas the external renderer samples from. The frame context rebuilds
// it whenever the pixel density changes, so glyphs stay sharp on mixed-DPI
// setups. It never draws; it only measures and packs.
package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/emberui/ember/geom"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // points
	BearingX float32 // left bearing in points
	BearingY float32 // baseline-to-top in points
	W, H     int     // bitmap size in pixels
	U0, V0   float32 // UVs in the atlas
	U1, V1   float32
}

// Fonts is an immutable glyph table for one pixel density. Rebuilt, never
// mutated, when the density or the staged font size changes.
type Fonts struct {
	pixelsPerPoint float32
	sizePts        float32

	ascent, descent, lineHeight float32 // points, at sizePts

	glyphs map[rune]Glyph
	atlas  *image.Alpha
}

// New builds the glyph table and atlas for the embedded Go Regular face at
// the given density and base size in points.
func New(pixelsPerPoint, sizePts float32) (*Fonts, error) {
	if pixelsPerPoint <= 0 {
		return nil, fmt.Errorf("fonts: pixels per point must be positive, got %v", pixelsPerPoint)
	}
	if sizePts <= 0 {
		return nil, fmt.Errorf("fonts: size must be positive, got %v", sizePts)
	}

	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	sizePx := float64(sizePts * pixelsPerPoint)
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	f := &Fonts{
		pixelsPerPoint: pixelsPerPoint,
		sizePts:        sizePts,
		ascent:         fixedToFloat(m.Ascent) / pixelsPerPoint,
		descent:        fixedToFloat(m.Descent) / pixelsPerPoint,
		lineHeight:     fixedToFloat(m.Height) / pixelsPerPoint,
		glyphs:         make(map[rune]Glyph, 95),
	}
	f.buildAtlas(face)
	return f, nil
}

// MustNew is New for the embedded face, panicking on failure. The inputs
// come from the frame context, which validates them, and the font data is
// compiled in; failure here is a programming error.
func MustNew(pixelsPerPoint, sizePts float32) *Fonts {
	f, err := New(pixelsPerPoint, sizePts)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Fonts) PixelsPerPoint() float32 { return f.pixelsPerPoint }
func (f *Fonts) SizePts() float32        { return f.sizePts }

// LineHeight in points for the given font size.
func (f *Fonts) LineHeight(sizePts float32) float32 {
	return f.lineHeight * sizePts / f.sizePts
}

// Atlas returns the white-coverage glyph texture. The external renderer
// uploads it and addresses it as the font texture.
func (f *Fonts) Atlas() *image.Alpha { return f.atlas }

func (f *Fonts) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Measure returns the size of single-line text in points at the given size.
// Unknown runes measure as the replacement glyph.
func (f *Fonts) Measure(s string, sizePts float32) geom.Vec2 {
	scale := sizePts / f.sizePts
	var w float32
	for _, r := range s {
		g, ok := f.glyphs[r]
		if !ok {
			g = f.glyphs['?']
		}
		w += g.Advance
	}
	return geom.Vec2{X: w * scale, Y: f.lineHeight * scale}
}

func (f *Fonts) buildAtlas(face font.Face) {
	// ASCII 32..126, shelf-packed like the usual monochrome atlas.
	type slot struct {
		r    rune
		rect image.Rectangle
		mask image.Image
		mp   image.Point
		adv  fixed.Int26_6
	}
	var slots []slot
	const pad = 1
	shelfW := 0
	maxH := 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		slots = append(slots, slot{r: r, rect: dr, mask: mask, mp: maskp, adv: adv})
		shelfW += dr.Dx() + pad
		maxH = max(maxH, dr.Dy())
	}

	// Roughly square atlas from the total shelf length.
	atlasW := 128
	for atlasW*atlasW < shelfW*(maxH+pad) {
		atlasW *= 2
	}
	rowH := maxH + pad
	x, y := 0, 0
	for _, s := range slots {
		if x+s.rect.Dx()+pad > atlasW {
			x = 0
			y += rowH
		}
		x += s.rect.Dx() + pad
	}
	atlasH := y + rowH
	f.atlas = image.NewAlpha(image.Rect(0, 0, atlasW, atlasH))

	ppp := f.pixelsPerPoint
	x, y = 0, 0
	for _, s := range slots {
		w, h := s.rect.Dx(), s.rect.Dy()
		if x+w+pad > atlasW {
			x = 0
			y += rowH
		}
		dst := image.Rect(x, y, x+w, y+h)
		draw.Draw(f.atlas, dst, s.mask, s.mp, draw.Src)
		f.glyphs[s.r] = Glyph{
			Rune:     s.r,
			Advance:  fixedToFloat(s.adv) / ppp,
			BearingX: float32(s.rect.Min.X) / ppp,
			BearingY: float32(-s.rect.Min.Y) / ppp,
			W:        w,
			H:        h,
			U0:       float32(x) / float32(atlasW),
			V0:       float32(y) / float32(atlasH),
			U1:       float32(x+w) / float32(atlasW),
			V1:       float32(y+h) / float32(atlasH),
		}
		x += w + pad
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
