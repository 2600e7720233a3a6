// Package style holds the shared, immutable theme the frame context hands
// out to widget code. A Style value is never mutated after publication;
// replacing it is staged by the context and takes effect at the next frame
// start.
package style

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/paint"
)

type Style struct {
	// AnimationTime is how long boolean state transitions take, seconds.
	AnimationTime float32
	// ItemSpacing between widgets; half of it pads interaction targets
	// so narrow widgets stay clickable.
	ItemSpacing geom.Vec2
	Interaction Interaction
	Visuals     Visuals
}

type Interaction struct {
	// ResizeGrabRadiusSide enlarges the hit area near resizable window
	// edges so narrow resize handles remain practically grabbable.
	ResizeGrabRadiusSide   float32
	ResizeGrabRadiusCorner float32
}

type Visuals struct {
	WidgetBg        paint.Color
	WidgetBgHovered paint.Color
	WidgetBgActive  paint.Color
	Text            paint.Color
	ErrorFg         paint.Color
	ErrorBg         paint.Color
	CornerRadius    float32
	StrokeWidth     float32
	FontSize        float32
}

func Default() *Style {
	return &Style{
		AnimationTime: 1.0 / 12.0,
		ItemSpacing:   geom.Vec2{X: 8, Y: 4},
		Interaction: Interaction{
			ResizeGrabRadiusSide:   5,
			ResizeGrabRadiusCorner: 10,
		},
		Visuals: Visuals{
			WidgetBg:        paint.Color{0.23, 0.23, 0.25, 1},
			WidgetBgHovered: paint.Color{0.33, 0.33, 0.36, 1},
			WidgetBgActive:  paint.Color{0.42, 0.42, 0.47, 1},
			Text:            paint.Color{0.86, 0.86, 0.86, 1},
			ErrorFg:         paint.White,
			ErrorBg:         paint.Color{0.7, 0, 0, 1},
			CornerRadius:    4,
			StrokeWidth:     1,
			FontSize:        13,
		},
	}
}

// Blend interpolates between two colors in Luv space, which keeps perceived
// brightness even during hover/press fades. Alpha is interpolated linearly.
func Blend(a, b paint.Color, t float32) paint.Color {
	t = geom.Clamp(t, 0, 1)
	ca := colorful.Color{R: float64(a[0]), G: float64(a[1]), B: float64(a[2])}
	cb := colorful.Color{R: float64(b[0]), G: float64(b[1]), B: float64(b[2])}
	m := ca.BlendLuv(cb, float64(t)).Clamped()
	return paint.Color{
		float32(m.R),
		float32(m.G),
		float32(m.B),
		geom.Lerp(a[3], b[3], t),
	}
}
