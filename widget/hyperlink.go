package widget

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/paint"
	"github.com/emberui/ember/ui"
)

var linkColor = paint.Color{0.35, 0.6, 1.0, 1}

// Hyperlink draws underlined link text; a click asks the embedding
// application to open the URL through the frame output.
func Hyperlink(ctx *ui.Context, p ui.Painter, pos geom.Pos2, label, url string) ui.Response {
	st := ctx.Style()
	size := st.Visuals.FontSize
	dim := ctx.Fonts().Measure(label, size)
	rect := geom.RectFromMinSize(pos, dim)

	key := ctx.RegisterUniqueID(id.New(url), url, pos)
	resp := ctx.Interact(p.Layer(), p.ClipRect(), rect, &key, ui.SenseClick())
	if resp.Clicked {
		ctx.OpenURL(url)
	}
	if resp.Hovered {
		ctx.SetCursorIcon(ui.CursorPointingHand)
	}

	p.Text(pos, label, size, linkColor)
	baseline := geom.Pos2{X: rect.Left(), Y: rect.Bottom()}
	p.Line(baseline, geom.Pos2{X: rect.Right(), Y: rect.Bottom()}, 1, linkColor)

	return resp
}
