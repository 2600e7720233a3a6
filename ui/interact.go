package ui

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
	"github.com/emberui/ember/layer"
)

// Sense is the set of interactions a region opts into.
type Sense struct {
	Click bool
	Drag  bool
}

func SenseNothing() Sense      { return Sense{} }
func SenseClick() Sense        { return Sense{Click: true} }
func SenseDrag() Sense         { return Sense{Drag: true} }
func SenseClickAndDrag() Sense { return Sense{Click: true, Drag: true} }

// Response is the outcome of one Interact call.
type Response struct {
	// Rect is the region that was interacted with.
	Rect  geom.Rect
	Sense Sense
	// Hovered is true when the pointer is over the region and the
	// region's layer is topmost there. While something is being
	// dragged, only the owner reports hovered.
	Hovered bool
	// Clicked is true on the frame the primary button is released over
	// the region, provided the press stayed within the click threshold.
	Clicked       bool
	DoubleClicked bool
	// Active is true while this identifier owns the click or drag slot.
	Active     bool
	HasKbFocus bool
}

// Interact resolves hover/click/drag for one region. It is the per-widget
// entry point: given the owning layer, a clip rectangle, the target
// rectangle, an optional identifier and the requested sense, it reads and
// may claim the global click/drag ownership slots.
//
// Passing a nil key or an empty sense reports hover only, with no ownership
// side effects. Only one identifier may own each slot at a time; the first
// claimant on a press wins and later claims in the same frame are refused.
func (c *Context) Interact(lay layer.Layer, clipRect, rect geom.Rect, key *id.ID, sense Sense) Response {
	st := c.Style()
	// Pad the target by half the item spacing to make it easier to hit.
	interactRect := rect.Expand2(st.ItemSpacing.Scale(0.5))
	hovered := c.ContainsMouse(lay, clipRect, interactRect)

	hasKb := false
	if key != nil {
		c.memMu.Lock()
		hasKb = c.mem.Interaction.HasKbFocus(*key)
		c.memMu.Unlock()
	}

	resp := Response{Rect: rect, Sense: sense, Hovered: hovered, HasKbFocus: hasKb}
	if key == nil || sense == SenseNothing() {
		return resp
	}
	k := *key
	mouse := c.in.Mouse

	c.memMu.Lock()
	defer c.memMu.Unlock()
	inter := &c.mem.Interaction

	// Record interest before a winner is chosen, so outer layers can
	// treat the pointer as used by the UI.
	inter.ClickInterest = inter.ClickInterest || (hovered && sense.Click)
	inter.DragInterest = inter.DragInterest || (hovered && sense.Drag)

	active := (inter.ClickID != nil && *inter.ClickID == k) ||
		(inter.DragID != nil && *inter.DragID == k)

	switch {
	case mouse.Pressed:
		if !hovered {
			return resp
		}
		if sense.Click && inter.ClickID == nil {
			// Start of a click.
			kk := k
			inter.ClickID = &kk
			resp.Active = true
		}
		if sense.Drag && (inter.DragID == nil || inter.DragIsWindow) {
			// Start of a drag. A window-move placeholder loses
			// its grab to a real drag claim.
			kk := k
			inter.DragID = &kk
			inter.DragIsWindow = false
			c.mem.WindowInteraction = nil
			resp.Active = true
		}
		return resp

	case mouse.Released:
		clicked := hovered && active && mouse.CouldBeClick
		resp.Clicked = clicked
		resp.DoubleClicked = clicked && mouse.DoubleClick
		resp.Active = active
		return resp

	case mouse.Down:
		// Mid-drag only the owner keeps reporting hovered, so other
		// overlapping regions don't light up.
		resp.Hovered = hovered && active
		resp.Active = active
		return resp

	default:
		resp.Active = active
		return resp
	}
}

// ContainsMouse reports whether the pointer is inside rect (clipped) and the
// given layer is topmost at the pointer position.
func (c *Context) ContainsMouse(lay layer.Layer, clipRect, rect geom.Rect) bool {
	pos := c.in.Mouse.Pos
	if pos == nil {
		return false
	}
	if !rect.Intersect(clipRect).Contains(*pos) {
		return false
	}
	top, ok := c.LayerAt(*pos)
	return ok && top == lay
}
