// Sandbox drives the frame core headlessly: a scripted pointer walks over a
// small UI (top panel, a button, a toggle, a link), and each frame's output
// and paint statistics are logged. No renderer is attached; the drained
// command stream is only counted.
package main

import (
	"log"

	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/input"
	"github.com/emberui/ember/layer"
	"github.com/emberui/ember/ui"
	"github.com/emberui/ember/widget"
)

type step struct {
	pos  geom.Pos2
	down bool
}

func main() {
	screen := geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: 800, Y: 600})
	ctx := ui.NewContext()

	// Move over the button, click it, then click the toggle.
	script := []step{
		{pos: geom.Pos2{X: 400, Y: 300}},
		{pos: geom.Pos2{X: 120, Y: 80}},
		{pos: geom.Pos2{X: 120, Y: 80}, down: true},
		{pos: geom.Pos2{X: 120, Y: 80}},
		{pos: geom.Pos2{X: 120, Y: 130}},
		{pos: geom.Pos2{X: 120, Y: 130}, down: true},
		{pos: geom.Pos2{X: 120, Y: 130}},
		{pos: geom.Pos2{X: 400, Y: 300}},
		{pos: geom.Pos2{X: 400, Y: 300}},
	}

	var (
		on     bool
		clicks int
	)
	for i, s := range script {
		pos := s.pos
		ctx.BeginFrame(input.RawInput{
			MouseDown:      s.down,
			MousePos:       &pos,
			ScreenRect:     screen,
			PixelsPerPoint: 1,
			Time:           float64(i) / 60,
		})

		ctx.AllocateTopPanel(geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: 800, Y: 40}))
		bg := ctx.Painter(layer.Background(), screen)

		btn := widget.Button(ctx, bg,
			geom.RectFromMinSize(geom.Pos2{X: 80, Y: 64}, geom.Vec2{X: 80, Y: 32}),
			widget.ButtonProps{Label: "Click me"})
		if btn.Clicked {
			clicks++
		}

		widget.Toggle(ctx, bg,
			geom.RectFromMinSize(geom.Pos2{X: 80, Y: 116}, geom.Vec2{X: 48, Y: 28}),
			id.New("demo-toggle"), &on)

		widget.Hyperlink(ctx, bg, geom.Pos2{X: 80, Y: 160},
			"ember on GitHub", "https://github.com/emberui/ember")

		out, cmds := ctx.EndFrame()
		stats := ctx.PaintStats()
		log.Printf("frame %d: cmds=%d tris=%d repaint=%v openURL=%q",
			i, len(cmds), stats.Triangles, out.NeedsRepaint, out.OpenURL)
	}

	log.Printf("done: clicks=%d toggle=%v usedRect=%+v", clicks, on, ctx.UsedRect())
}
