package paint

import (
	"sort"

	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/layer"
)

// GraphicLayers accumulates paint commands per layer during a frame,
// preserving insertion order within each layer, and is drained once per
// frame into a flat back-to-front sequence.
type GraphicLayers struct {
	lists map[layer.Layer][]ClippedCmd
	// seq records first-touch order so draining is deterministic for
	// layers absent from the area order.
	seq []layer.Layer
}

func (g *GraphicLayers) Add(l layer.Layer, clip geom.Rect, c Cmd) {
	if g.lists == nil {
		g.lists = make(map[layer.Layer][]ClippedCmd)
	}
	if _, ok := g.lists[l]; !ok {
		g.seq = append(g.seq, l)
	}
	g.lists[l] = append(g.lists[l], ClippedCmd{Clip: clip, Cmd: c})
}

// Drain empties the accumulated lists and returns every command back to
// front: coarse Order first, then the position in areaOrder, then first
// touch this frame for layers without a registered area.
func (g *GraphicLayers) Drain(areaOrder []layer.Layer) []ClippedCmd {
	areaPos := make(map[layer.Layer]int, len(areaOrder))
	for i, l := range areaOrder {
		areaPos[l] = i
	}
	seqPos := make(map[layer.Layer]int, len(g.seq))
	for i, l := range g.seq {
		seqPos[l] = i
	}

	layers := make([]layer.Layer, 0, len(g.seq))
	layers = append(layers, g.seq...)
	sort.SliceStable(layers, func(i, j int) bool {
		a, b := layers[i], layers[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		ai, aok := areaPos[a]
		bi, bok := areaPos[b]
		switch {
		case aok && bok:
			return ai < bi
		case aok != bok:
			// Registered areas draw beneath stray layers of the
			// same order.
			return aok
		default:
			return seqPos[a] < seqPos[b]
		}
	})

	var total int
	for _, l := range layers {
		total += len(g.lists[l])
	}
	out := make([]ClippedCmd, 0, total)
	for _, l := range layers {
		out = append(out, g.lists[l]...)
	}

	g.lists = nil
	g.seq = nil
	return out
}
