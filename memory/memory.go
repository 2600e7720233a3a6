// Package memory is the cross-frame state of the toolkit: which identifier
// owns the pointer, which has keyboard focus, and where floating areas live
// in the z-order. The frame context owns a single Memory for the lifetime of
// the application and is the only mutator within a frame.
package memory

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
)

type Memory struct {
	Interaction Interaction
	Areas       Areas

	// WindowInteraction is the in-progress window move/resize, if any.
	// It must not silently span frames: one that started this frame is
	// closed again at frame end unless it is a live drag.
	WindowInteraction *WindowInteraction
}

func New() *Memory {
	return &Memory{}
}

// BeginFrame rolls the persistent state into a new frame. prevMouseDown is
// the primary-button state at the end of the previous frame: ownership
// claimed on press is reclaimed here, at the first frame boundary after the
// button is no longer held, so the release frame itself still observes the
// owner as active.
func (m *Memory) BeginFrame(prevMouseDown bool) {
	m.Interaction.beginFrame(prevMouseDown)
	if !prevMouseDown {
		m.WindowInteraction = nil
	}
	if m.WindowInteraction != nil {
		m.WindowInteraction.startedThisFrame = false
	}
}

// EndFrame finalizes the frame: area visibility and z-order are rolled
// forward, and a window interaction that both started and ended inside this
// frame is dropped.
func (m *Memory) EndFrame() {
	m.Areas.endFrame()
	if wi := m.WindowInteraction; wi != nil && wi.startedThisFrame && !wi.liveDrag {
		m.WindowInteraction = nil
	}
}

// Interaction tracks pointer and keyboard ownership. At most one identifier
// holds the click slot and one the drag slot at any instant; the first
// claimant on a press wins and later claims in the same frame are refused.
type Interaction struct {
	// ClickID currently owns the click, nil when unclaimed.
	ClickID *id.ID
	// DragID currently owns the drag.
	DragID *id.ID
	// KbFocusID has keyboard focus. Persists until explicitly changed.
	KbFocusID *id.ID

	// ClickInterest and DragInterest are recomputed every frame: set as
	// soon as any hovered region wants the respective sense, before a
	// winner is chosen. Outer layers use them to decide whether the
	// pointer is "used by the UI".
	ClickInterest bool
	DragInterest  bool

	// DragIsWindow marks the drag owner as a generic window-move
	// placeholder, which any real drag claim preempts.
	DragIsWindow bool
}

func (i *Interaction) beginFrame(prevMouseDown bool) {
	i.ClickInterest = false
	i.DragInterest = false
	if !prevMouseDown {
		i.ClickID = nil
		i.DragID = nil
		i.DragIsWindow = false
	}
}

// IsUsingMouse reports whether some identifier owns a click or drag.
func (i *Interaction) IsUsingMouse() bool {
	return i.ClickID != nil || i.DragID != nil
}

func (i *Interaction) HasKbFocus(key id.ID) bool {
	return i.KbFocusID != nil && *i.KbFocusID == key
}

// WindowInteraction is transient state for a window being moved or resized.
type WindowInteraction struct {
	Area     id.ID
	StartPos geom.Pos2
	StartRect geom.Rect
	// Edges being dragged; all false means a pure move.
	Left, Right, Top, Bottom bool

	startedThisFrame bool
	liveDrag         bool
}

// Start records a new window interaction beginning this frame.
func (m *Memory) StartWindowInteraction(wi WindowInteraction) {
	wi.startedThisFrame = true
	m.WindowInteraction = &wi
}

// ContinueWindowInteraction marks the interaction as a live drag so it may
// span frames until the button is released.
func (m *Memory) ContinueWindowInteraction() {
	if m.WindowInteraction != nil {
		m.WindowInteraction.liveDrag = true
	}
}

// IsPureMove reports whether no resize edge is engaged.
func (wi *WindowInteraction) IsPureMove() bool {
	return !wi.Left && !wi.Right && !wi.Top && !wi.Bottom
}
