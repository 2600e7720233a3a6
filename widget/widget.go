// Package widget holds a handful of widgets that exemplify the interaction
// patterns of the core: claim-and-click (Button), click plus animated state
// (Toggle), output side effects (Hyperlink) and passive textured regions
// (Image). It is deliberately not a catalog; widgets take an explicit
// rectangle and paint through a Painter.
package widget

import (
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/paint"
	"github.com/emberui/ember/style"
	"github.com/emberui/ember/ui"
)

// interactFill picks the widget background for a response, fading the hover
// transition with the animation manager so highlights ease in and out.
func interactFill(ctx *ui.Context, key id.ID, resp ui.Response) paint.Color {
	vis := ctx.Style().Visuals
	if resp.Active {
		return vis.WidgetBgActive
	}
	t := ctx.AnimateBool(key.WithString("hover"), resp.Hovered)
	return style.Blend(vis.WidgetBg, vis.WidgetBgHovered, t)
}
