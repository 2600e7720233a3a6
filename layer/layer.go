// Package layer defines the z-ordered drawing and interaction surfaces.
// Every paint command and every interactive region belongs to exactly one
// layer; back-to-front ordering is Order first, then the per-frame area
// order within it.
package layer

import "github.com/emberui/ember/id"

// Order is the coarse z-slot of a layer.
type Order uint8

const (
	// OrderBackground holds panels and catches otherwise-unclaimed hits.
	OrderBackground Order = iota
	// OrderMiddle holds floating windows.
	OrderMiddle
	// OrderForeground holds surfaces that stay above windows, e.g. menus.
	OrderForeground
	// OrderTooltip holds tooltips.
	OrderTooltip
	// OrderDebug holds diagnostic overlay markup. Always on top.
	OrderDebug

	orderCount
)

// Layer identifies one drawing/interaction surface.
type Layer struct {
	Order Order
	ID    id.ID
}

// Background is the reserved layer spanning the whole screen. It is
// registered anew at every frame start.
func Background() Layer {
	return Layer{Order: OrderBackground, ID: id.New("background")}
}

// Debug is the overlay layer used for collision and misuse diagnostics.
func Debug() Layer {
	return Layer{Order: OrderDebug, ID: id.New("debug")}
}
