// Package paint holds the abstract draw command stream: ordered-per-layer
// command lists accumulated during a frame and drained once, in layer
// z-order, for an external tessellator. The core never owns pixels.
package paint

import "github.com/emberui/ember/geom"

// TextureID names a texture owned by the external renderer. Texture zero is
// the font atlas.
type TextureID uint64

const FontTexture TextureID = 0

// Cmd is one abstract paint command.
type Cmd interface{ isCmd() }

type LineCmd struct {
	From, To geom.Pos2
	Width    float32
	Color    Color
}

func (LineCmd) isCmd() {}

type RectCmd struct {
	Rect         geom.Rect
	CornerRadius float32
	Fill         Color
	StrokeWidth  float32
	Stroke       Color
}

func (RectCmd) isCmd() {}

type TextCmd struct {
	// Pos is the top-left of the text.
	Pos   geom.Pos2
	Text  string
	// Size is the font size in points.
	Size  float32
	Color Color
}

func (TextCmd) isCmd() {}

// Vertex is one corner of a textured triangle.
type Vertex struct {
	Pos geom.Pos2
	// UV in texel-normalized coordinates.
	UV    geom.Pos2
	Color Color
}

type TrianglesCmd struct {
	Texture  TextureID
	Vertices []Vertex
	// Indices index Vertices, three per triangle.
	Indices []uint32
}

func (TrianglesCmd) isCmd() {}

// DebugCmd is diagnostic overlay markup: a marked rectangle with a label.
// Usage violations render as these instead of failing hard, since a UI must
// keep rendering even when misused.
type DebugCmd struct {
	Rect  geom.Rect
	Color Color
	Text  string
}

func (DebugCmd) isCmd() {}

// ClippedCmd is a command plus the clip rectangle it was issued under.
type ClippedCmd struct {
	Clip geom.Rect
	Cmd  Cmd
}
