package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_NothingIsUnionIdentity(t *testing.T) {
	r := RectFromMinSize(Pos2{X: 10, Y: 20}, Vec2{X: 30, Y: 40})

	assert.True(t, Nothing().IsNothing())
	assert.Equal(t, r, Nothing().Union(r))
	assert.Equal(t, r, r.Union(Nothing()))
	assert.False(t, Nothing().Contains(Pos2{}))
}

func TestRect_ContainsEdgesInclusive(t *testing.T) {
	r := RectFromMinMax(Pos2{X: 0, Y: 0}, Pos2{X: 10, Y: 10})

	assert.True(t, r.Contains(Pos2{X: 0, Y: 0}))
	assert.True(t, r.Contains(Pos2{X: 10, Y: 10}))
	assert.True(t, r.Contains(Pos2{X: 5, Y: 5}))
	assert.False(t, r.Contains(Pos2{X: 10.001, Y: 5}))
}

func TestRect_IntersectAndUnion(t *testing.T) {
	a := RectFromMinMax(Pos2{X: 0, Y: 0}, Pos2{X: 10, Y: 10})
	b := RectFromMinMax(Pos2{X: 5, Y: 5}, Pos2{X: 20, Y: 20})

	assert.Equal(t, RectFromMinMax(Pos2{X: 5, Y: 5}, Pos2{X: 10, Y: 10}), a.Intersect(b))
	assert.Equal(t, RectFromMinMax(Pos2{X: 0, Y: 0}, Pos2{X: 20, Y: 20}), a.Union(b))
}

func TestRect_ExpandAndTranslate(t *testing.T) {
	r := RectFromMinMax(Pos2{X: 2, Y: 2}, Pos2{X: 4, Y: 4})

	assert.Equal(t, RectFromMinMax(Pos2{X: 1, Y: 1}, Pos2{X: 5, Y: 5}), r.Expand(1))
	assert.Equal(t, RectFromMinMax(Pos2{X: 3, Y: 4}, Pos2{X: 5, Y: 6}), r.Translate(Vec2{X: 1, Y: 2}))
}

func TestRect_CenterAndSize(t *testing.T) {
	r := RectFromCenterSize(Pos2{X: 5, Y: 5}, Vec2{X: 4, Y: 2})

	assert.Equal(t, Pos2{X: 5, Y: 5}, r.Center())
	assert.Equal(t, Vec2{X: 4, Y: 2}, r.Size())
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(0), Lerp(0, 10, 0))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
	assert.Equal(t, float32(3), Clamp(2, 3, 7))
	assert.Equal(t, float32(7), Clamp(9, 3, 7))
}

func TestPos2_Distance(t *testing.T) {
	assert.InDelta(t, 5, Pos2{X: 0, Y: 0}.Distance(Pos2{X: 3, Y: 4}), 1e-6)
}
