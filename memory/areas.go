package memory

import (
	"sort"

	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/layer"
)

// AreaState is the placement of one floating area (panel background,
// window, tooltip).
type AreaState struct {
	Pos  geom.Pos2
	Size geom.Vec2
	// Interactable areas participate in pointer hit resolution.
	Interactable bool
}

func (a AreaState) Rect() geom.Rect {
	return geom.RectFromMinSize(a.Pos, a.Size)
}

// Areas tracks every layer's placement, the global z-order and which layers
// were visible this frame and the last.
type Areas struct {
	areas map[id.ID]AreaState
	// order is back-to-front; kept sorted by coarse Order, free-form
	// within one Order.
	order               []layer.Layer
	visibleLastFrame    map[layer.Layer]bool
	visibleCurrentFrame map[layer.Layer]bool
	wantsToBeOnTop      map[layer.Layer]bool
}

func (a *Areas) init() {
	if a.areas == nil {
		a.areas = make(map[id.ID]AreaState)
		a.visibleLastFrame = make(map[layer.Layer]bool)
		a.visibleCurrentFrame = make(map[layer.Layer]bool)
		a.wantsToBeOnTop = make(map[layer.Layer]bool)
	}
}

func (a *Areas) Count() int { return len(a.areas) }

func (a *Areas) Get(key id.ID) (AreaState, bool) {
	s, ok := a.areas[key]
	return s, ok
}

// Order returns the back-to-front layer order. The returned slice is owned
// by Areas and must not be mutated.
func (a *Areas) Order() []layer.Layer { return a.order }

// SetState registers or moves an area and marks it visible this frame.
// A layer seen for the first time goes on top of its Order slot.
func (a *Areas) SetState(l layer.Layer, state AreaState) {
	a.init()
	a.visibleCurrentFrame[l] = true
	a.areas[l.ID] = state
	for _, o := range a.order {
		if o == l {
			return
		}
	}
	a.order = append(a.order, l)
	a.sortOrder()
}

// MoveToTop raises the layer within its Order slot at the end of the frame.
func (a *Areas) MoveToTop(l layer.Layer) {
	a.init()
	a.visibleCurrentFrame[l] = true
	a.wantsToBeOnTop[l] = true
}

// IsVisible is true when the layer was visible this frame or the previous
// one, so a window does not flicker out during the frame it reappears.
func (a *Areas) IsVisible(l layer.Layer) bool {
	return a.visibleLastFrame[l] || a.visibleCurrentFrame[l]
}

// VisibleWindows returns the state of every visible floating window
// (middle-order area), for total-footprint reporting.
func (a *Areas) VisibleWindows() []AreaState {
	var out []AreaState
	for _, l := range a.order {
		if l.Order != layer.OrderMiddle || !a.IsVisible(l) {
			continue
		}
		if s, ok := a.areas[l.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// LayerAt resolves the topmost interactable layer at pos. Area rectangles
// are enlarged by grabRadius so narrow resize handles near window edges
// remain practically clickable.
func (a *Areas) LayerAt(pos geom.Pos2, grabRadius float32) (layer.Layer, bool) {
	for i := len(a.order) - 1; i >= 0; i-- {
		l := a.order[i]
		if !a.IsVisible(l) {
			continue
		}
		s, ok := a.areas[l.ID]
		if !ok || !s.Interactable {
			continue
		}
		if s.Rect().Expand(grabRadius).Contains(pos) {
			return l, true
		}
	}
	return layer.Layer{}, false
}

func (a *Areas) endFrame() {
	a.init()
	// Raise the layers that asked for it, preserving relative order of
	// everything else.
	if len(a.wantsToBeOnTop) > 0 {
		pos := make(map[layer.Layer]int, len(a.order))
		for i, l := range a.order {
			pos[l] = i
		}
		sort.SliceStable(a.order, func(i, j int) bool {
			x, y := a.order[i], a.order[j]
			if x.Order != y.Order {
				return x.Order < y.Order
			}
			xt, yt := a.wantsToBeOnTop[x], a.wantsToBeOnTop[y]
			if xt != yt {
				return yt
			}
			return pos[x] < pos[y]
		})
		clear(a.wantsToBeOnTop)
	}

	a.visibleLastFrame, a.visibleCurrentFrame = a.visibleCurrentFrame, a.visibleLastFrame
	clear(a.visibleCurrentFrame)
}

func (a *Areas) sortOrder() {
	sort.SliceStable(a.order, func(i, j int) bool {
		return a.order[i].Order < a.order[j].Order
	})
}
