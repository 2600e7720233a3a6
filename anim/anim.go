// Package anim maps an identifier plus a boolean target to a smoothly
// interpolated scalar, advanced once per query based on elapsed wall time.
package anim

import (
	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/id"
)

type boolAnim struct {
	target   bool
	progress float32
	lastTick float64
}

// Manager owns the per-identifier animation records. Entries are created
// lazily on first query and never destroyed; records for identifiers no
// longer queried simply stop being touched.
type Manager struct {
	bools map[id.ID]boolAnim
}

func NewManager() *Manager {
	return &Manager{bools: make(map[id.ID]boolAnim)}
}

// AnimateBool returns a value in [0,1] indicating "how on" the identifier
// is. The first observation of an identifier returns exactly 1 for a true
// target and exactly 0 for a false one, with no animation. Subsequent calls
// move the stored progress toward the target over animationTime seconds:
// any positive elapsed time strictly moves the value, so a true target
// yields a value greater than zero and a false target a value less than one.
func (m *Manager) AnimateBool(now float64, animationTime float32, key id.ID, target bool) float32 {
	a, seen := m.bools[key]
	if !seen {
		a = boolAnim{target: target, lastTick: now}
		if target {
			a.progress = 1
		}
		m.bools[key] = a
		return a.progress
	}

	dt := float32(now - a.lastTick)
	if dt < 0 {
		dt = 0
	}
	goal := float32(0)
	if target {
		goal = 1
	}
	// Zero animation time snaps immediately.
	step := float32(1)
	if animationTime > 0 {
		step = dt / animationTime
	}
	if a.progress < goal {
		a.progress = min(goal, a.progress+step)
	} else if a.progress > goal {
		a.progress = max(goal, a.progress-step)
	}
	a.progress = geom.Clamp(a.progress, 0, 1)
	a.target = target
	a.lastTick = now
	m.bools[key] = a
	return a.progress
}
