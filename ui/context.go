// Package ui is the frame core of the toolkit: a per-frame context that
// ingests input, remembers interaction and placement state across frames,
// resolves which widget owns the pointer and keyboard, and emits an abstract
// draw command stream for an external tessellator.
//
// The caller rebuilds the whole UI every frame between BeginFrame and
// EndFrame; the context keeps just enough memory across frames to make
// clicks, drags and animations coherent.
package ui

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/emberui/ember/anim"
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/input"
	"github.com/emberui/ember/layer"
	"github.com/emberui/ember/memory"
	"github.com/emberui/ember/paint"
	"github.com/emberui/ember/style"
	"github.com/emberui/ember/text"
)

// repaintFrames is how many frames RequestRepaint schedules. Two, not one,
// covers the race where the request lands between event arrival and frame
// completion.
const repaintFrames = 2

// Context ties the frame lifecycle together. State groups are guarded by
// their own mutexes so read-only queries interleave with in-flight widget
// calls; all mutation still happens on one logical frame owner. Callers must
// not call back into the context from inside a memory closure.
type Context struct {
	optsMu       sync.Mutex
	curStyle     *style.Style
	nextStyle    *style.Style
	fontSize     float32
	nextFontSize float32

	// fonts is nil until the first BeginFrame; only BeginFrame writes it.
	fonts *text.Fonts

	memMu sync.Mutex
	mem   *memory.Memory

	animMu sync.Mutex
	anims  *anim.Manager

	// in is replaced wholesale at frame start and read-only afterwards.
	in input.State

	rectMu        sync.Mutex
	availableRect *geom.Rect
	usedByPanels  *geom.Rect

	gfxMu sync.Mutex
	gfx   paint.GraphicLayers

	outMu sync.Mutex
	out   Output

	idsMu   sync.Mutex
	usedIDs map[id.ID]geom.Pos2

	statsMu sync.Mutex
	stats   paint.Stats

	repaints atomic.Int32
}

func NewContext() *Context {
	return &Context{
		curStyle: style.Default(),
		mem:      memory.New(),
		anims:    anim.NewManager(),
		usedIDs:  make(map[id.ID]geom.Pos2),
	}
}

// BeginFrame starts a new frame transaction: rolls persistent memory
// forward, replaces the input snapshot, resets the panel accounting,
// promotes staged configuration and rebuilds fonts if the pixel density
// changed, and registers the background layer across the whole screen so it
// can catch unclaimed pointer hits.
func (c *Context) BeginFrame(raw input.RawInput) {
	prevDown := c.in.Mouse.Down
	c.memMu.Lock()
	c.mem.BeginFrame(prevDown)
	c.memMu.Unlock()

	c.idsMu.Lock()
	clear(c.usedIDs)
	c.idsMu.Unlock()

	c.in = c.in.BeginFrame(raw)
	screen := c.in.ScreenRect

	c.rectMu.Lock()
	avail := screen
	nothing := geom.Nothing()
	c.availableRect = &avail
	c.usedByPanels = &nothing
	c.rectMu.Unlock()

	c.optsMu.Lock()
	if c.nextStyle != nil {
		c.curStyle = c.nextStyle
		c.nextStyle = nil
	}
	if c.fontSize <= 0 {
		c.fontSize = c.curStyle.Visuals.FontSize
	}
	if c.nextFontSize > 0 {
		c.fontSize = c.nextFontSize
		c.nextFontSize = 0
	}
	fontSize := c.fontSize
	c.optsMu.Unlock()

	if c.fonts == nil ||
		c.fonts.PixelsPerPoint() != c.in.PixelsPerPoint ||
		c.fonts.SizePts() != fontSize {
		c.fonts = text.MustNew(c.in.PixelsPerPoint, fontSize)
	}

	c.memMu.Lock()
	c.mem.Areas.SetState(layer.Background(), memory.AreaState{
		Pos:          screen.Min,
		Size:         screen.Size(),
		Interactable: true,
	})
	c.memMu.Unlock()
}

// EndFrame finishes the frame: finalizes persistent memory, swaps out the
// accumulated output, decrements the repaint counter and drains the draw
// command buffer in layer z-order. The returned commands are what an
// external tessellator turns into triangles.
func (c *Context) EndFrame() (Output, []paint.ClippedCmd) {
	if c.in.WantsRepaint {
		c.RequestRepaint()
	}

	c.memMu.Lock()
	c.mem.EndFrame()
	order := append([]layer.Layer(nil), c.mem.Areas.Order()...)
	c.memMu.Unlock()

	c.outMu.Lock()
	out := c.out
	c.out = Output{}
	c.outMu.Unlock()

	if c.repaints.Load() > 0 {
		c.repaints.Add(-1)
		out.NeedsRepaint = true
	}

	c.gfxMu.Lock()
	cmds := c.gfx.Drain(order)
	c.gfxMu.Unlock()

	stats := paint.StatsFrom(cmds)
	c.statsMu.Lock()
	c.stats = stats
	c.statsMu.Unlock()

	return out, cmds
}

// RequestRepaint guarantees at least two more frames are driven even if the
// request races a frame boundary. Idempotent within a frame.
func (c *Context) RequestRepaint() {
	c.repaints.Store(repaintFrames)
}

// Input returns the current frame's immutable snapshot.
func (c *Context) Input() input.State { return c.in }

// Style returns the active shared style. The returned value is immutable;
// use SetStyle to stage a replacement.
func (c *Context) Style() *style.Style {
	c.optsMu.Lock()
	defer c.optsMu.Unlock()
	return c.curStyle
}

// SetStyle stages a style that becomes active at the next BeginFrame, never
// mid-frame, so concurrent widget calls keep reading a consistent style.
func (c *Context) SetStyle(s *style.Style) {
	c.optsMu.Lock()
	c.nextStyle = s
	c.optsMu.Unlock()
}

// SetFontSize stages the base font size in points for the next frame.
func (c *Context) SetFontSize(pts float32) {
	c.optsMu.Lock()
	c.nextFontSize = pts
	c.optsMu.Unlock()
}

// Fonts must not be called before the first BeginFrame: the glyph cache
// needs the pixel density from input.
func (c *Context) Fonts() *text.Fonts {
	if c.fonts == nil {
		panic("ui: Fonts called before the first BeginFrame")
	}
	return c.fonts
}

func (c *Context) PixelsPerPoint() float32 { return c.in.PixelsPerPoint }

// RoundToPixel snaps a point coordinate to the physical pixel grid.
func (c *Context) RoundToPixel(v float32) float32 {
	ppp := c.PixelsPerPoint()
	if ppp <= 0 {
		return v
	}
	return float32(math.Round(float64(v*ppp))) / ppp
}

func (c *Context) RoundPosToPixels(p geom.Pos2) geom.Pos2 {
	return geom.Pos2{X: c.RoundToPixel(p.X), Y: c.RoundToPixel(p.Y)}
}

func (c *Context) RoundRectToPixels(r geom.Rect) geom.Rect {
	return geom.Rect{Min: c.RoundPosToPixels(r.Min), Max: c.RoundPosToPixels(r.Max)}
}

// UseMemory runs f with exclusive access to persistent memory. f must not
// call back into the context.
func (c *Context) UseMemory(f func(*memory.Memory)) {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	f(c.mem)
}

// LayerAt resolves the topmost interactable layer at pos, honoring the
// style's resize grab margin.
func (c *Context) LayerAt(pos geom.Pos2) (layer.Layer, bool) {
	grab := c.Style().Interaction.ResizeGrabRadiusSide
	c.memMu.Lock()
	defer c.memMu.Unlock()
	return c.mem.Areas.LayerAt(pos, grab)
}

// AnimateBool returns how "on" the identifier is, in [0,1], advancing the
// animation by the elapsed time. Requests a repaint while a transition is in
// progress so the host keeps driving frames until it finishes.
func (c *Context) AnimateBool(key id.ID, target bool) float32 {
	t := c.Style().AnimationTime
	c.animMu.Lock()
	v := c.anims.AnimateBool(c.in.Time, t, key, target)
	c.animMu.Unlock()
	if 0 < v && v < 1 {
		c.RequestRepaint()
	}
	return v
}

// ===== Panel and window space accounting =====

// AvailableRect is the screen area not yet claimed by panels. Must not be
// called before the first BeginFrame.
func (c *Context) AvailableRect() geom.Rect {
	c.rectMu.Lock()
	defer c.rectMu.Unlock()
	if c.availableRect == nil {
		panic("ui: AvailableRect called before the first BeginFrame")
	}
	return *c.availableRect
}

// AllocateLeftPanel removes the strip covered by panel from the left edge of
// the available rectangle.
func (c *Context) AllocateLeftPanel(panel geom.Rect) {
	c.rectMu.Lock()
	if c.availableRect != nil {
		r := *c.availableRect
		r.Min.X = panel.Max.X
		*c.availableRect = r
	}
	c.rectMu.Unlock()
	c.registerPanel(panel)
}

// AllocateTopPanel removes the strip covered by panel from the top edge of
// the available rectangle.
func (c *Context) AllocateTopPanel(panel geom.Rect) {
	c.rectMu.Lock()
	if c.availableRect != nil {
		r := *c.availableRect
		r.Min.Y = panel.Max.Y
		*c.availableRect = r
	}
	c.rectMu.Unlock()
	c.registerPanel(panel)
}

// AllocateCentralPanel consumes all remaining panel space. At most one per
// frame: a second call is a usage violation, reported as an on-screen
// diagnostic while the first claimant keeps its space.
func (c *Context) AllocateCentralPanel(panel geom.Rect) {
	c.rectMu.Lock()
	duplicate := c.availableRect != nil && c.availableRect.IsNothing()
	nothing := geom.Nothing()
	c.availableRect = &nothing
	c.rectMu.Unlock()
	if duplicate {
		c.DebugPainter().Error(panel.Min, "central panel allocated twice in one frame")
	}
	c.registerPanel(panel)
}

func (c *Context) registerPanel(panel geom.Rect) {
	c.rectMu.Lock()
	defer c.rectMu.Unlock()
	used := geom.Nothing()
	if c.usedByPanels != nil {
		used = *c.usedByPanels
	}
	used = used.Union(panel)
	c.usedByPanels = &used
}

// UsedRect is the union of all panel footprints and visible floating
// windows: the UI's total footprint this frame.
func (c *Context) UsedRect() geom.Rect {
	c.rectMu.Lock()
	used := geom.Nothing()
	if c.usedByPanels != nil {
		used = *c.usedByPanels
	}
	c.rectMu.Unlock()

	c.memMu.Lock()
	windows := c.mem.Areas.VisibleWindows()
	c.memMu.Unlock()
	for _, w := range windows {
		used = used.Union(w.Rect())
	}
	return used
}

func (c *Context) UsedSize() geom.Vec2 {
	used := c.UsedRect()
	return geom.Vec2{X: used.Max.X, Y: used.Max.Y}
}

// ConstrainWindowRect clamps a proposed window rectangle into the available
// rectangle. A window larger than the available space overflows
// symmetrically instead of being forced to an impossible fit. The result is
// snapped to the pixel grid.
func (c *Context) ConstrainWindowRect(window geom.Rect) geom.Rect {
	screen := c.AvailableRect()

	marginX := max(window.Width()-screen.Width(), 0)
	marginY := max(window.Height()-screen.Height(), 0)

	pos := window.Min
	pos.X = max(pos.X, screen.Left()-marginX)
	pos.X = min(pos.X, screen.Right()+marginX-window.Width())
	pos.Y = max(pos.Y, screen.Top()-marginY)
	pos.Y = min(pos.Y, screen.Bottom()+marginY-window.Height())

	pos = c.RoundPosToPixels(pos)
	return geom.RectFromMinSize(pos, window.Size())
}

// ===== Identifier bookkeeping =====

// MakeUniqueID derives an identifier from source and registers it for
// collision detection at pos.
func (c *Context) MakeUniqueID(source string, pos geom.Pos2) id.ID {
	return c.RegisterUniqueID(id.New(source), source, pos)
}

func (c *Context) IsUniqueID(key id.ID) bool {
	c.idsMu.Lock()
	defer c.idsMu.Unlock()
	_, used := c.usedIDs[key]
	return !used
}

// RegisterUniqueID records the identifier for this frame. A second
// registration of the same identifier paints collision diagnostics at both
// offending positions; execution continues and the identifier is returned
// either way.
func (c *Context) RegisterUniqueID(key id.ID, name string, pos geom.Pos2) id.ID {
	c.idsMu.Lock()
	clashPos, clashed := c.usedIDs[key]
	c.usedIDs[key] = pos
	c.idsMu.Unlock()

	if clashed {
		p := c.DebugPainter()
		if clashPos.Distance(pos) < 4 {
			p.Error(pos, fmt.Sprintf("use of non-unique ID %q (name clash?)", name))
		} else {
			p.Error(clashPos, fmt.Sprintf("first use of non-unique ID %q (name clash?)", name))
			p.Error(pos, fmt.Sprintf("second use of non-unique ID %q (name clash?)", name))
		}
	}
	return key
}

// ===== Embedding-application queries =====

// IsMouseOverArea reports whether the pointer is over any UI area: a window,
// or the part of the background covered by panels.
func (c *Context) IsMouseOverArea() bool {
	pos := c.in.Mouse.Pos
	if pos == nil {
		return false
	}
	lay, ok := c.LayerAt(*pos)
	if !ok {
		return false
	}
	if lay.Order == layer.OrderBackground {
		// The available rect is what the UI is NOT using.
		c.rectMu.Lock()
		defer c.rectMu.Unlock()
		return c.availableRect != nil && !c.availableRect.Contains(*pos)
	}
	return true
}

// WantsMouseInput is true when the UI should get the pointer instead of the
// embedding application: something is being used, or the pointer hovers a UI
// area and no drag started outside.
func (c *Context) WantsMouseInput() bool {
	return c.IsUsingMouse() || (c.IsMouseOverArea() && !c.in.Mouse.Down)
}

// IsUsingMouse is true while a widget owns a click or drag, e.g. mid
// slider-drag. Plain hovering does not count.
func (c *Context) IsUsingMouse() bool {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	return c.mem.Interaction.IsUsingMouse()
}

// WantsKeyboardInput is true while some widget has keyboard focus.
func (c *Context) WantsKeyboardInput() bool {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	return c.mem.Interaction.KbFocusID != nil
}

func (c *Context) HasKbFocus(key id.ID) bool {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	return c.mem.Interaction.HasKbFocus(key)
}

func (c *Context) RequestKbFocus(key id.ID) {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	k := key
	c.mem.Interaction.KbFocusID = &k
}

func (c *Context) KillKbFocus() {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	c.mem.Interaction.KbFocusID = nil
}

// ClaimWindowDrag claims the drag slot on behalf of a window move. The claim
// is a placeholder: any real drag claim on this press preempts it.
func (c *Context) ClaimWindowDrag(win id.ID, wi memory.WindowInteraction) bool {
	c.memMu.Lock()
	defer c.memMu.Unlock()
	inter := &c.mem.Interaction
	if inter.DragID != nil && !inter.DragIsWindow {
		return false
	}
	k := win
	inter.DragID = &k
	inter.DragIsWindow = true
	c.mem.StartWindowInteraction(wi)
	return true
}

// ===== Output side effects =====

// OpenURL asks the embedding application to open a link after the frame.
func (c *Context) OpenURL(url string) {
	c.outMu.Lock()
	c.out.OpenURL = url
	c.outMu.Unlock()
}

// CopyText asks the embedding application to place text on the clipboard.
func (c *Context) CopyText(s string) {
	c.outMu.Lock()
	c.out.CopiedText = s
	c.outMu.Unlock()
}

func (c *Context) SetCursorIcon(icon CursorIcon) {
	c.outMu.Lock()
	c.out.CursorIcon = icon
	c.outMu.Unlock()
}

// PaintStats are the aggregate statistics of the last EndFrame.
func (c *Context) PaintStats() paint.Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}
