package widget

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/paint"
	"github.com/emberui/ember/style"
	"github.com/emberui/ember/ui"
)

var toggleOnBg = paint.Color{0, 0.5, 0.25, 1}

// Toggle draws a switch that slides its knob while the backing bool
// animates between off and on. The caller supplies the identifier since the
// switch has no label of its own.
func Toggle(ctx *ui.Context, p ui.Painter, rect geom.Rect, key id.ID, on *bool) ui.Response {
	key = ctx.RegisterUniqueID(key, "toggle", rect.Min)
	resp := ctx.Interact(p.Layer(), p.ClipRect(), rect, &key, ui.SenseClick())
	if resp.Clicked {
		*on = !*on
	}

	howOn := ctx.AnimateBool(key, *on)
	st := ctx.Style()
	radius := rect.Height() / 2

	bg := style.Blend(st.Visuals.WidgetBg, toggleOnBg, howOn)
	p.RectFilled(rect, radius, bg)
	p.RectStroke(rect, radius, st.Visuals.StrokeWidth, st.Visuals.WidgetBgHovered)

	// The knob slides from the left end to the right as howOn goes 0->1.
	knobX := geom.Lerp(rect.Left()+radius, rect.Right()-radius, howOn)
	knobR := 0.75 * radius
	knob := geom.RectFromCenterSize(
		geom.Pos2{X: knobX, Y: rect.Center().Y},
		geom.Vec2{X: 2 * knobR, Y: 2 * knobR},
	)
	p.RectFilled(knob, knobR, interactFill(ctx, key, resp))

	return resp
}
