package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/input"
	"github.com/emberui/ember/layer"
	"github.com/emberui/ember/memory"
	"github.com/emberui/ember/paint"
)

func testScreen() geom.Rect {
	return geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: 800, Y: 600})
}

func at(x, y float32) *geom.Pos2 { return &geom.Pos2{X: x, Y: y} }

// frame starts a new frame with a scripted pointer.
func frame(c *Context, time float64, pos *geom.Pos2, down bool) {
	c.BeginFrame(input.RawInput{
		MouseDown:      down,
		MousePos:       pos,
		ScreenRect:     testScreen(),
		PixelsPerPoint: 1,
		Time:           time,
	})
}

func interact(c *Context, rect geom.Rect, key id.ID, sense Sense) Response {
	return c.Interact(layer.Background(), c.Input().ScreenRect, rect, &key, sense)
}

// debugTexts collects the text of every debug-layer text command.
func debugTexts(cmds []paint.ClippedCmd) []string {
	var out []string
	for _, c := range cmds {
		if tc, ok := c.Cmd.(paint.TextCmd); ok {
			out = append(out, tc.Text)
		}
	}
	return out
}

func TestInteract_ClickReportedOnRelease(t *testing.T) {
	c := NewContext()
	btn := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 90, Y: 30})
	key := id.New("btn")
	over := at(50, 25)

	frame(c, 0, over, false)
	r := interact(c, btn, key, SenseClick())
	assert.True(t, r.Hovered)
	assert.False(t, r.Clicked)
	assert.False(t, r.Active)
	c.EndFrame()

	frame(c, 0.02, over, true)
	r = interact(c, btn, key, SenseClick())
	assert.True(t, r.Active, "press claims the click")
	assert.False(t, r.Clicked, "no click before release")
	c.EndFrame()

	frame(c, 0.04, over, false)
	r = interact(c, btn, key, SenseClick())
	assert.True(t, r.Clicked, "click lands on the release frame")
	assert.True(t, r.Active, "release frame still sees the owner")
	c.EndFrame()

	frame(c, 0.06, over, false)
	r = interact(c, btn, key, SenseClick())
	assert.False(t, r.Active, "ownership released after the up frame")
	assert.False(t, r.Clicked)
	c.EndFrame()
}

func TestInteract_DragBeyondThresholdIsNotAClick(t *testing.T) {
	c := NewContext()
	btn := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 300, Y: 30})
	key := id.New("wide")

	frame(c, 0, at(20, 20), false)
	interact(c, btn, key, SenseClick())
	c.EndFrame()

	frame(c, 0.02, at(20, 20), true)
	interact(c, btn, key, SenseClick())
	c.EndFrame()

	// Drag well past the click threshold while staying inside the region.
	frame(c, 0.04, at(120, 20), true)
	interact(c, btn, key, SenseClick())
	c.EndFrame()

	frame(c, 0.06, at(120, 20), false)
	r := interact(c, btn, key, SenseClick())
	assert.False(t, r.Clicked, "a drag-then-release is not a click")
	assert.True(t, r.Active)
	c.EndFrame()
}

func TestInteract_FirstClaimantWins(t *testing.T) {
	c := NewContext()
	rect := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 90, Y: 30})
	a, b := id.New("a"), id.New("b")
	over := at(50, 25)

	frame(c, 0, over, false)
	c.EndFrame()

	frame(c, 0.02, over, true)
	ra := interact(c, rect, a, SenseClick())
	rb := interact(c, rect, b, SenseClick())
	assert.True(t, ra.Active)
	assert.False(t, rb.Active, "second overlapping claim is refused")
	c.EndFrame()

	frame(c, 0.04, over, false)
	ra = interact(c, rect, a, SenseClick())
	rb = interact(c, rect, b, SenseClick())
	assert.True(t, ra.Clicked)
	assert.False(t, rb.Clicked)
	c.EndFrame()
}

func TestInteract_NilKeyReportsHoverOnly(t *testing.T) {
	c := NewContext()
	rect := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 90, Y: 30})
	over := at(50, 25)

	frame(c, 0, over, false)
	c.EndFrame()

	frame(c, 0.02, over, true)
	r := c.Interact(layer.Background(), testScreen(), rect, nil, SenseClick())
	assert.True(t, r.Hovered)
	assert.False(t, r.Active)
	assert.False(t, c.IsUsingMouse(), "nil key never claims ownership")
	c.EndFrame()
}

func TestInteract_OnlyOwnerHoversWhileHeld(t *testing.T) {
	c := NewContext()
	rect := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 90, Y: 30})
	a, b := id.New("a"), id.New("b")
	over := at(50, 25)

	frame(c, 0, over, false)
	c.EndFrame()

	frame(c, 0.02, over, true)
	interact(c, rect, a, SenseClick())
	interact(c, rect, b, SenseClick())
	c.EndFrame()

	frame(c, 0.04, over, true)
	ra := interact(c, rect, a, SenseClick())
	rb := interact(c, rect, b, SenseClick())
	assert.True(t, ra.Hovered, "the owner keeps hovering mid-hold")
	assert.False(t, rb.Hovered, "non-owners are suppressed mid-hold")
	c.EndFrame()
}

func TestInteract_DoubleClick(t *testing.T) {
	c := NewContext()
	btn := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 90, Y: 30})
	key := id.New("dbl")
	over := at(50, 25)

	script := []struct {
		time   float64
		down   bool
		dblClk bool
	}{
		{0.00, false, false},
		{0.02, true, false},
		{0.04, false, false}, // first click
		{0.06, true, false},
		{0.08, false, true}, // second click, double
	}
	for _, s := range script {
		frame(c, s.time, over, s.down)
		r := interact(c, btn, key, SenseClick())
		assert.Equal(t, s.dblClk, r.DoubleClicked, "t=%v", s.time)
		c.EndFrame()
	}
}

func TestInteract_InterestRecordedForLosers(t *testing.T) {
	c := NewContext()
	rect := geom.RectFromMinSize(geom.Pos2{X: 10, Y: 10}, geom.Vec2{X: 90, Y: 30})
	a, b := id.New("a"), id.New("b")
	over := at(50, 25)

	frame(c, 0, over, false)
	c.EndFrame()

	frame(c, 0.02, over, true)
	interact(c, rect, a, SenseClick())
	interact(c, rect, b, SenseDrag())
	c.UseMemory(func(m *memory.Memory) {
		assert.True(t, m.Interaction.ClickInterest)
		assert.True(t, m.Interaction.DragInterest)
	})
	c.EndFrame()
}

func TestContext_WindowOccludesBackground(t *testing.T) {
	c := NewContext()
	win := layer.Layer{Order: layer.OrderMiddle, ID: id.New("win")}
	inside := at(100, 100)
	outside := at(400, 400)

	frame(c, 0, inside, false)
	c.UseMemory(func(m *memory.Memory) {
		m.Areas.SetState(win, memory.AreaState{
			Pos:          geom.Pos2{X: 50, Y: 50},
			Size:         geom.Vec2{X: 200, Y: 150},
			Interactable: true,
		})
	})

	top, ok := c.LayerAt(*inside)
	require.True(t, ok)
	assert.Equal(t, win, top)

	top, ok = c.LayerAt(*outside)
	require.True(t, ok)
	assert.Equal(t, layer.Background(), top)

	// A background widget under the window does not hover.
	bg := geom.RectFromMinSize(geom.Pos2{X: 80, Y: 80}, geom.Vec2{X: 40, Y: 40})
	r := interact(c, bg, id.New("under"), SenseClick())
	assert.False(t, r.Hovered)

	// The same region on the window's own layer does.
	r = c.Interact(win, testScreen(), bg, ptr(id.New("on-win")), SenseClick())
	assert.True(t, r.Hovered)
	c.EndFrame()
}

func ptr(k id.ID) *id.ID { return &k }

func TestContext_PanelAccounting(t *testing.T) {
	c := NewContext()
	frame(c, 0, nil, false)

	left := geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: 200, Y: 600})
	c.AllocateLeftPanel(left)
	assert.Equal(t, float32(200), c.AvailableRect().Min.X)

	top := geom.RectFromMinSize(geom.Pos2{X: 200, Y: 0}, geom.Vec2{X: 600, Y: 50})
	c.AllocateTopPanel(top)
	avail := c.AvailableRect()
	assert.Equal(t, float32(200), avail.Min.X)
	assert.Equal(t, float32(50), avail.Min.Y)

	c.AllocateCentralPanel(avail)
	assert.True(t, c.AvailableRect().IsNothing())

	used := c.UsedRect()
	assert.Equal(t, testScreen(), used, "panels together cover the screen")
	c.EndFrame()
}

func TestContext_DuplicateCentralPanelPaintsDiagnostic(t *testing.T) {
	c := NewContext()
	frame(c, 0, nil, false)

	avail := c.AvailableRect()
	c.AllocateCentralPanel(avail)
	c.AllocateCentralPanel(avail)

	_, cmds := c.EndFrame()
	found := false
	for _, s := range debugTexts(cmds) {
		if strings.Contains(s, "central panel") {
			found = true
		}
	}
	assert.True(t, found, "second central panel must be reported on screen")
}

func TestContext_UniqueIDCollisionDiagnostics(t *testing.T) {
	c := NewContext()
	frame(c, 0, nil, false)

	c.MakeUniqueID("save", geom.Pos2{X: 10, Y: 10})
	c.MakeUniqueID("save", geom.Pos2{X: 300, Y: 200})

	_, cmds := c.EndFrame()
	var clashes []string
	for _, s := range debugTexts(cmds) {
		if strings.Contains(s, "non-unique") {
			clashes = append(clashes, s)
		}
	}
	// Far apart: both uses get their own marker.
	assert.Len(t, clashes, 2)

	// Close together: one marker is enough.
	frame(c, 0.02, nil, false)
	c.MakeUniqueID("load", geom.Pos2{X: 10, Y: 10})
	c.MakeUniqueID("load", geom.Pos2{X: 11, Y: 10})
	_, cmds = c.EndFrame()
	clashes = clashes[:0]
	for _, s := range debugTexts(cmds) {
		if strings.Contains(s, "non-unique") {
			clashes = append(clashes, s)
		}
	}
	assert.Len(t, clashes, 1)

	// Registrations do not leak across frames, and a single registration
	// is silent.
	frame(c, 0.04, nil, false)
	assert.True(t, c.IsUniqueID(id.New("save")))
	c.MakeUniqueID("save", geom.Pos2{X: 10, Y: 10})
	assert.False(t, c.IsUniqueID(id.New("save")))
	_, cmds = c.EndFrame()
	for _, s := range debugTexts(cmds) {
		assert.NotContains(t, s, "non-unique")
	}
}

func TestContext_RequestRepaintCoversTwoFrames(t *testing.T) {
	c := NewContext()

	frame(c, 0, nil, false)
	c.RequestRepaint()
	out, _ := c.EndFrame()
	assert.True(t, out.NeedsRepaint)

	frame(c, 0.02, nil, false)
	out, _ = c.EndFrame()
	assert.True(t, out.NeedsRepaint)

	frame(c, 0.04, nil, false)
	out, _ = c.EndFrame()
	assert.False(t, out.NeedsRepaint)
}

func TestContext_AnimateBoolDrivesRepaints(t *testing.T) {
	c := NewContext()
	key := id.New("fade")

	frame(c, 0, nil, false)
	v := c.AnimateBool(key, false)
	assert.Equal(t, float32(0), v, "first sight snaps to the target")
	out, _ := c.EndFrame()
	assert.False(t, out.NeedsRepaint)

	frame(c, 0.02, nil, false)
	v = c.AnimateBool(key, true)
	assert.Greater(t, v, float32(0))
	assert.Less(t, v, float32(1))
	out, _ = c.EndFrame()
	assert.True(t, out.NeedsRepaint, "mid-transition frames keep the loop running")

	// Far in the future the value has settled; the repaint counter drains.
	for i := 0; i < 3; i++ {
		frame(c, 10+float64(i)*0.02, nil, false)
		v = c.AnimateBool(key, true)
		assert.Equal(t, float32(1), v)
		out, _ = c.EndFrame()
	}
	assert.False(t, out.NeedsRepaint)
}

func TestContext_ConstrainWindowRect(t *testing.T) {
	c := NewContext()
	frame(c, 0, nil, false)
	defer c.EndFrame()

	// Inside: unchanged.
	w := geom.RectFromMinSize(geom.Pos2{X: 100, Y: 100}, geom.Vec2{X: 200, Y: 150})
	assert.Equal(t, w, c.ConstrainWindowRect(w))

	// Outside: pulled back in, size preserved.
	w = geom.RectFromMinSize(geom.Pos2{X: -50, Y: 550}, geom.Vec2{X: 200, Y: 150})
	got := c.ConstrainWindowRect(w)
	assert.Equal(t, float32(0), got.Min.X)
	assert.Equal(t, float32(450), got.Min.Y)
	assert.Equal(t, w.Size(), got.Size())

	// Wider than the screen: allowed to overflow symmetrically rather
	// than being forced to fit.
	w = geom.RectFromMinSize(geom.Pos2{X: -500, Y: 0}, geom.Vec2{X: 1000, Y: 100})
	got = c.ConstrainWindowRect(w)
	assert.Equal(t, float32(-200), got.Min.X)
	assert.Equal(t, w.Size(), got.Size())
}

func TestContext_PanicsBeforeFirstFrame(t *testing.T) {
	c := NewContext()
	assert.Panics(t, func() { c.AvailableRect() })
	assert.Panics(t, func() { c.Fonts() })
}

func TestContext_FontsRebuiltOnDensityChange(t *testing.T) {
	c := NewContext()

	frame(c, 0, nil, false)
	assert.Equal(t, float32(1), c.Fonts().PixelsPerPoint())
	first := c.Fonts()
	c.EndFrame()

	c.BeginFrame(input.RawInput{
		ScreenRect:     testScreen(),
		PixelsPerPoint: 2,
		Time:           0.02,
	})
	assert.Equal(t, float32(2), c.Fonts().PixelsPerPoint())
	assert.NotSame(t, first, c.Fonts())
	c.EndFrame()

	// Unchanged density keeps the cache.
	c.BeginFrame(input.RawInput{ScreenRect: testScreen(), Time: 0.04})
	second := c.Fonts()
	c.EndFrame()
	c.BeginFrame(input.RawInput{ScreenRect: testScreen(), Time: 0.06})
	assert.Same(t, second, c.Fonts())
	c.EndFrame()
}

func TestContext_OutputClearedEachFrame(t *testing.T) {
	c := NewContext()

	frame(c, 0, nil, false)
	c.OpenURL("https://example.com")
	c.CopyText("hello")
	c.SetCursorIcon(CursorPointingHand)
	out, _ := c.EndFrame()
	assert.Equal(t, "https://example.com", out.OpenURL)
	assert.Equal(t, "hello", out.CopiedText)
	assert.Equal(t, CursorPointingHand, out.CursorIcon)

	frame(c, 0.02, nil, false)
	out, _ = c.EndFrame()
	assert.Empty(t, out.OpenURL)
	assert.Empty(t, out.CopiedText)
	assert.Equal(t, CursorDefault, out.CursorIcon)
}

func TestContext_WindowDragPreemptedByRealDrag(t *testing.T) {
	c := NewContext()
	win := layer.Layer{Order: layer.OrderMiddle, ID: id.New("win")}
	handle := geom.RectFromMinSize(geom.Pos2{X: 60, Y: 60}, geom.Vec2{X: 40, Y: 20})
	over := at(80, 70)

	frame(c, 0, over, false)
	c.UseMemory(func(m *memory.Memory) {
		m.Areas.SetState(win, memory.AreaState{
			Pos: geom.Pos2{X: 50, Y: 50}, Size: geom.Vec2{X: 200, Y: 150},
			Interactable: true,
		})
	})
	c.EndFrame()

	frame(c, 0.02, over, true)
	c.UseMemory(func(m *memory.Memory) {
		m.Areas.SetState(win, memory.AreaState{
			Pos: geom.Pos2{X: 50, Y: 50}, Size: geom.Vec2{X: 200, Y: 150},
			Interactable: true,
		})
	})
	claimed := c.ClaimWindowDrag(win.ID, memory.WindowInteraction{Area: win.ID, StartPos: *over})
	assert.True(t, claimed)

	// A widget on the window claims a real drag: the placeholder yields.
	slider := id.New("slider")
	r := c.Interact(win, testScreen(), handle, &slider, SenseDrag())
	assert.True(t, r.Active)
	c.UseMemory(func(m *memory.Memory) {
		assert.NotNil(t, m.Interaction.DragID)
		assert.Equal(t, slider, *m.Interaction.DragID)
		assert.False(t, m.Interaction.DragIsWindow)
		assert.Nil(t, m.WindowInteraction)
	})

	// The reverse never happens: the placeholder cannot evict a real drag.
	assert.False(t, c.ClaimWindowDrag(win.ID, memory.WindowInteraction{Area: win.ID}))
	c.EndFrame()
}

func TestContext_KeyboardFocus(t *testing.T) {
	c := NewContext()
	field := id.New("field")

	frame(c, 0, nil, false)
	assert.False(t, c.WantsKeyboardInput())

	c.RequestKbFocus(field)
	assert.True(t, c.HasKbFocus(field))
	assert.True(t, c.WantsKeyboardInput())
	c.EndFrame()

	// Focus persists across frames until killed.
	frame(c, 0.02, nil, false)
	assert.True(t, c.HasKbFocus(field))
	c.KillKbFocus()
	assert.False(t, c.WantsKeyboardInput())
	c.EndFrame()
}

func TestContext_MouseOverAreaAndWantsInput(t *testing.T) {
	c := NewContext()
	left := geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: 200, Y: 600})

	// Over the panel strip: the UI wants the pointer.
	frame(c, 0, at(100, 300), false)
	c.AllocateLeftPanel(left)
	assert.True(t, c.IsMouseOverArea())
	assert.True(t, c.WantsMouseInput())
	c.EndFrame()

	// Over free background: the embedding application keeps it.
	frame(c, 0.02, at(500, 300), false)
	c.AllocateLeftPanel(left)
	assert.False(t, c.IsMouseOverArea())
	assert.False(t, c.WantsMouseInput())
	c.EndFrame()

	// Pointer gone: nothing is over anything.
	frame(c, 0.04, nil, false)
	assert.False(t, c.IsMouseOverArea())
	c.EndFrame()
}

func TestContext_RoundToPixelGrid(t *testing.T) {
	c := NewContext()
	c.BeginFrame(input.RawInput{
		ScreenRect:     testScreen(),
		PixelsPerPoint: 2,
		Time:           0,
	})
	defer c.EndFrame()

	assert.Equal(t, float32(1.5), c.RoundToPixel(1.6))
	assert.Equal(t, float32(2), c.RoundToPixel(2.1))
	p := c.RoundPosToPixels(geom.Pos2{X: 0.3, Y: 0.8})
	assert.Equal(t, geom.Pos2{X: 0.5, Y: 1}, p)
}

func TestContext_PaintStats(t *testing.T) {
	c := NewContext()
	frame(c, 0, nil, false)
	p := c.Painter(layer.Background(), testScreen())
	p.RectFilled(geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: 10, Y: 10}), 0, paint.White)
	p.Text(geom.Pos2{}, "hi", 13, paint.White)
	_, cmds := c.EndFrame()

	assert.Len(t, cmds, 2)
	stats := c.PaintStats()
	assert.Equal(t, 2, stats.Cmds)
	assert.Equal(t, 1, stats.Rects)
	assert.Equal(t, 1, stats.Texts)
}
