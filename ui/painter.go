package ui

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/layer"
	"github.com/emberui/ember/paint"
)

// Painter queues paint commands onto one layer under one clip rectangle.
// It is a cheap value; widgets create them freely during the frame.
type Painter struct {
	ctx  *Context
	lay  layer.Layer
	clip geom.Rect
}

func (c *Context) Painter(lay layer.Layer, clip geom.Rect) Painter {
	return Painter{ctx: c, lay: lay, clip: clip}
}

// DebugPainter paints on the diagnostic overlay across the whole screen.
func (c *Context) DebugPainter() Painter {
	return c.Painter(layer.Debug(), c.in.ScreenRect)
}

func (p Painter) Ctx() *Context       { return p.ctx }
func (p Painter) Layer() layer.Layer  { return p.lay }
func (p Painter) ClipRect() geom.Rect { return p.clip }

// WithClip returns a painter for the same layer restricted to clip.
func (p Painter) WithClip(clip geom.Rect) Painter {
	p.clip = clip
	return p
}

// Add queues one command. Commands keep insertion order within the layer and
// are drained, z-ordered, at EndFrame.
func (p Painter) Add(cmd paint.Cmd) {
	p.ctx.gfxMu.Lock()
	p.ctx.gfx.Add(p.lay, p.clip, cmd)
	p.ctx.gfxMu.Unlock()
}

func (p Painter) Line(from, to geom.Pos2, width float32, color paint.Color) {
	p.Add(paint.LineCmd{From: from, To: to, Width: width, Color: color})
}

func (p Painter) RectFilled(r geom.Rect, cornerRadius float32, fill paint.Color) {
	p.Add(paint.RectCmd{Rect: r, CornerRadius: cornerRadius, Fill: fill})
}

func (p Painter) RectStroke(r geom.Rect, cornerRadius, width float32, stroke paint.Color) {
	p.Add(paint.RectCmd{Rect: r, CornerRadius: cornerRadius, StrokeWidth: width, Stroke: stroke})
}

// Text queues single-line text with its top-left at pos and returns the
// measured size.
func (p Painter) Text(pos geom.Pos2, s string, size float32, color paint.Color) geom.Vec2 {
	p.Add(paint.TextCmd{Pos: pos, Text: s, Size: size, Color: color})
	return p.measure(s, size)
}

// Error paints a developer-facing message at pos: white text on a red
// banner. Usage violations surface through here so the UI keeps rendering.
func (p Painter) Error(pos geom.Pos2, msg string) {
	st := p.ctx.Style()
	size := st.Visuals.FontSize
	dim := p.measure(msg, size)
	banner := geom.RectFromMinSize(pos, dim).Expand(2)
	p.Add(paint.RectCmd{Rect: banner, Fill: st.Visuals.ErrorBg})
	p.Add(paint.TextCmd{Pos: pos, Text: msg, Size: size, Color: st.Visuals.ErrorFg})
}

// DebugRect marks a rectangle with a label on the current layer.
func (p Painter) DebugRect(r geom.Rect, color paint.Color, label string) {
	p.Add(paint.DebugCmd{Rect: r, Color: color, Text: label})
}

func (p Painter) measure(s string, size float32) geom.Vec2 {
	if f := p.ctx.fonts; f != nil {
		return f.Measure(s, size)
	}
	// Diagnostics may run before the first frame; estimate rather than
	// fail.
	return geom.Vec2{X: float32(len(s)) * size * 0.5, Y: size}
}
