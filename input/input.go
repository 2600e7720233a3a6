// Package input turns the raw per-frame feed from the embedding application
// into a resolved, immutable snapshot: press/release transitions for the
// primary button, click-vs-drag classification and double-click detection.
// The core never polls; it only consumes what is handed to BeginFrame.
package input

import "github.com/emberui/ember/geom"

// Mouse-state constants, in points and seconds.
const (
	// MaxClickDist is how far the pointer may travel while pressed and
	// still count as a click rather than a drag.
	MaxClickDist = 6.0
	// MaxClickDuration is how long a press may be held and still count
	// as a click.
	MaxClickDuration = 0.6
	// MaxDoubleClickDelay is the time window for a double click.
	MaxDoubleClickDelay = 0.3
)

// RawInput is what the embedding application feeds into each frame.
// It is consumed wholesale; the core keeps no reference to it afterwards.
type RawInput struct {
	// MouseDown is whether the primary button is held.
	MouseDown bool
	// MousePos is nil when the pointer is outside the surface.
	MousePos *geom.Pos2
	Scroll   geom.Vec2
	// ScreenRect is the full drawable surface in points.
	ScreenRect geom.Rect
	// PixelsPerPoint is the pixel density. Zero means "unchanged" (1 on
	// the very first frame).
	PixelsPerPoint float32
	// Time is seconds since app start.
	Time float64
	// Events are the queued keyboard/text events since the last frame.
	Events []Event
	// WantsRepaint hints that a repaint is owed for reasons the core
	// cannot see, e.g. an in-progress IME composition.
	WantsRepaint bool
}

// Event is a queued input event.
type Event interface{ isEvent() }

type KeyEvent struct {
	Key     Key
	Pressed bool
	Mods    Mod
}

func (KeyEvent) isEvent() {}

// TextEvent carries committed text input.
type TextEvent struct{ Text string }

func (TextEvent) isEvent() {}

type CopyEvent struct{}

func (CopyEvent) isEvent() {}

type CutEvent struct{}

func (CutEvent) isEvent() {}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyTab
	KeyEnter
	KeyBackspace
	KeyDelete
	KeySpace
	KeyHome
	KeyEnd
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// MouseState is the resolved pointer state for one frame.
type MouseState struct {
	// Down is whether the primary button is held this frame.
	Down bool
	// Pressed is the down transition: down this frame, up the previous.
	Pressed bool
	// Released is the up transition.
	Released bool
	// CouldBeClick is set on press and survives only while the pointer
	// stays within MaxClickDist of the press origin and the press is
	// shorter than MaxClickDuration. It distinguishes a click from a
	// drag-then-release.
	CouldBeClick bool
	// DoubleClick is set on a press within MaxDoubleClickDelay and
	// MaxClickDist of the previous press, and held until release.
	DoubleClick bool
	// Pos is nil when the pointer is outside the surface.
	Pos *geom.Pos2
	// Delta is the pointer movement since the last frame.
	Delta geom.Vec2

	pressOrigin   *geom.Pos2
	pressTime     float64
	lastPressTime float64
	lastPressPos  *geom.Pos2
}

func (m MouseState) beginFrame(raw *RawInput) MouseState {
	next := MouseState{
		Down:          raw.MouseDown && raw.MousePos != nil,
		Pos:           raw.MousePos,
		pressOrigin:   m.pressOrigin,
		pressTime:     m.pressTime,
		lastPressTime: m.lastPressTime,
		lastPressPos:  m.lastPressPos,
	}
	next.Pressed = !m.Down && next.Down
	next.Released = m.Down && !next.Down

	if m.Pos != nil && next.Pos != nil {
		next.Delta = next.Pos.Sub(*m.Pos)
	}

	if next.Pressed {
		pos := *next.Pos
		next.DoubleClick = m.lastPressPos != nil &&
			raw.Time-m.lastPressTime < MaxDoubleClickDelay &&
			pos.Distance(*m.lastPressPos) < MaxClickDist
		next.pressOrigin = &pos
		next.pressTime = raw.Time
		next.lastPressTime = raw.Time
		next.lastPressPos = &pos
		next.CouldBeClick = true
	} else if next.Down || next.Released {
		// The double-click classification of the press survives until
		// release, where the click is finally reported.
		next.DoubleClick = m.DoubleClick
		next.CouldBeClick = m.CouldBeClick &&
			next.pressOrigin != nil && next.Pos != nil &&
			next.Pos.Distance(*next.pressOrigin) < MaxClickDist &&
			raw.Time-next.pressTime < MaxClickDuration
	}

	return next
}

// State is the immutable per-frame snapshot. Replaced wholesale at frame
// start; read-only for the rest of the frame.
type State struct {
	Mouse          MouseState
	Scroll         geom.Vec2
	ScreenRect     geom.Rect
	PixelsPerPoint float32
	// Time is seconds since app start, fixed for the whole frame.
	Time float64
	// DeltaTime is seconds since the previous frame.
	DeltaTime    float32
	Events       []Event
	WantsRepaint bool
}

// BeginFrame consumes raw and produces the snapshot for the next frame.
func (s State) BeginFrame(raw RawInput) State {
	ppp := raw.PixelsPerPoint
	if ppp <= 0 {
		ppp = s.PixelsPerPoint
	}
	if ppp <= 0 {
		ppp = 1
	}
	dt := float32(raw.Time - s.Time)
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	screen := raw.ScreenRect
	if screen.IsNothing() || screen == (geom.Rect{}) {
		screen = s.ScreenRect
	}
	return State{
		Mouse:          s.Mouse.beginFrame(&raw),
		Scroll:         raw.Scroll,
		ScreenRect:     screen,
		PixelsPerPoint: ppp,
		Time:           raw.Time,
		DeltaTime:      dt,
		Events:         raw.Events,
		WantsRepaint:   raw.WantsRepaint,
	}
}
