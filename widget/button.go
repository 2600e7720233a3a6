package widget

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/ui"
)

type ButtonProps struct {
	Label string
	// FontSize in points; zero uses the style default.
	FontSize float32
}

// Button draws a clickable labeled rectangle. The label doubles as the
// stable identifier, so two buttons with the same label in one frame trip
// the collision diagnostic.
func Button(ctx *ui.Context, p ui.Painter, rect geom.Rect, props ButtonProps) ui.Response {
	key := ctx.RegisterUniqueID(id.New(props.Label), props.Label, rect.Min)
	resp := ctx.Interact(p.Layer(), p.ClipRect(), rect, &key, ui.SenseClick())

	st := ctx.Style()
	size := props.FontSize
	if size <= 0 {
		size = st.Visuals.FontSize
	}

	p.RectFilled(rect, st.Visuals.CornerRadius, interactFill(ctx, key, resp))
	dim := ctx.Fonts().Measure(props.Label, size)
	topLeft := geom.Pos2{
		X: rect.Center().X - dim.X/2,
		Y: rect.Center().Y - dim.Y/2,
	}
	p.Text(ctx.RoundPosToPixels(topLeft), props.Label, size, st.Visuals.Text)

	if resp.Hovered {
		ctx.SetCursorIcon(ui.CursorPointingHand)
	}
	return resp
}
