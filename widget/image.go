package widget

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/paint"
	"github.com/emberui/ember/ui"
)

type ImageProps struct {
	Texture paint.TextureID
	// UV selects the texture region; the zero value means the full
	// texture, (0,0) top-left to (1,1) bottom-right.
	UV geom.Rect
	// BgFill is painted behind transparent images when its alpha is
	// nonzero.
	BgFill paint.Color
	// Tint multiplies the image color; the zero value means no tint.
	Tint paint.Color
}

// Image paints a textured quad. It senses nothing: the response reports
// hover only, with no ownership side effects.
func Image(ctx *ui.Context, p ui.Painter, rect geom.Rect, props ImageProps) ui.Response {
	resp := ctx.Interact(p.Layer(), p.ClipRect(), rect, nil, ui.SenseNothing())

	if props.BgFill[3] > 0 {
		p.RectFilled(rect, 0, props.BgFill)
	}

	uv := props.UV
	if uv == (geom.Rect{}) {
		uv = geom.RectFromMinMax(geom.Pos2{}, geom.Pos2{X: 1, Y: 1})
	}
	tint := props.Tint
	if tint == (paint.Color{}) {
		tint = paint.White
	}

	p.Add(paint.TrianglesCmd{
		Texture: props.Texture,
		Vertices: []paint.Vertex{
			{Pos: geom.Pos2{X: rect.Left(), Y: rect.Top()}, UV: geom.Pos2{X: uv.Left(), Y: uv.Top()}, Color: tint},
			{Pos: geom.Pos2{X: rect.Right(), Y: rect.Top()}, UV: geom.Pos2{X: uv.Right(), Y: uv.Top()}, Color: tint},
			{Pos: geom.Pos2{X: rect.Right(), Y: rect.Bottom()}, UV: geom.Pos2{X: uv.Right(), Y: uv.Bottom()}, Color: tint},
			{Pos: geom.Pos2{X: rect.Left(), Y: rect.Bottom()}, UV: geom.Pos2{X: uv.Left(), Y: uv.Bottom()}, Color: tint},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	})

	return resp
}
