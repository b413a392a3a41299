package store

import (
	"math"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// Fixed XP rewards per action. Un-completing an action deducts the same
// amount, except journal entries and goal completions which are one-way.
const (
	XPJournalEntry     = 10
	XPTodoComplete     = 5
	XPGoalTaskComplete = 8
	XPHabitComplete    = 7
	XPGoalComplete     = 20
)

// CostToLevel returns the XP required to advance past the given level:
// floor(100 * level^1.5). Monotonically increasing.
func CostToLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// applyXP adds delta to the progress, clamps XP at zero, and rolls excess XP
// into level-ups. The roll-up only runs forward: losing XP never decrements
// the level, it only reduces XP toward the zero floor at the current level.
func applyXP(p types.UserProgress, delta int) types.UserProgress {
	level := p.Level
	if level < 1 {
		level = 1
	}
	xp := p.XP + delta
	if xp < 0 {
		xp = 0
	}
	for xp >= CostToLevel(level) {
		xp -= CostToLevel(level)
		level++
	}
	return types.UserProgress{XP: xp, Level: level}
}
