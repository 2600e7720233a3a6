package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberui/ember/id"
)

const animTime = 0.1

func TestAnimateBool_FirstSightSnaps(t *testing.T) {
	m := NewManager()

	assert.Equal(t, float32(1), m.AnimateBool(0, animTime, id.New("on"), true))
	assert.Equal(t, float32(0), m.AnimateBool(0, animTime, id.New("off"), false))
}

func TestAnimateBool_MovesStrictlyTowardTarget(t *testing.T) {
	m := NewManager()
	key := id.New("switch")

	v := m.AnimateBool(0, animTime, key, false)
	assert.Equal(t, float32(0), v)

	// Target flips to true: any positive elapsed time must yield > 0.
	v = m.AnimateBool(0.001, animTime, key, true)
	assert.Greater(t, v, float32(0))
	assert.Less(t, v, float32(1))

	prev := v
	v = m.AnimateBool(0.02, animTime, key, true)
	assert.Greater(t, v, prev)

	// And strictly below 1 on the way back down.
	v = m.AnimateBool(0.021, animTime, key, false)
	assert.Less(t, v, float32(1))
}

func TestAnimateBool_ReachesAndHoldsTarget(t *testing.T) {
	m := NewManager()
	key := id.New("switch")

	m.AnimateBool(0, animTime, key, false)
	v := m.AnimateBool(1, animTime, key, true) // long elapsed time
	assert.Equal(t, float32(1), v)

	v = m.AnimateBool(2, animTime, key, true)
	assert.Equal(t, float32(1), v)
}

func TestAnimateBool_ZeroAnimationTimeSnaps(t *testing.T) {
	m := NewManager()
	key := id.New("instant")

	m.AnimateBool(0, 0, key, false)
	assert.Equal(t, float32(1), m.AnimateBool(0.01, 0, key, true))
}

func TestAnimateBool_IndependentIdentifiers(t *testing.T) {
	m := NewManager()

	m.AnimateBool(0, animTime, id.New("a"), false)
	assert.Equal(t, float32(1), m.AnimateBool(0.01, animTime, id.New("b"), true))
}
