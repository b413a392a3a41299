package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func goalAt(id string, status string, createdAt time.Time) types.Goal {
	return types.Goal{ID: id, Title: id, Status: status, CreatedAt: createdAt}
}

func TestResolveFocusAuto(t *testing.T) {
	base := testDay

	tests := []struct {
		name      string
		goals     []types.Goal
		wantFocus string
	}{
		{
			name:      "no goals",
			goals:     nil,
			wantFocus: "",
		},
		{
			name: "earliest created wins",
			goals: []types.Goal{
				goalAt("b", types.GoalStatusActive, base.Add(time.Hour)),
				goalAt("a", types.GoalStatusActive, base),
			},
			wantFocus: "a",
		},
		{
			name: "creation tie keeps collection order",
			goals: []types.Goal{
				goalAt("first", types.GoalStatusActive, base),
				goalAt("second", types.GoalStatusActive, base),
			},
			wantFocus: "first",
		},
		{
			name: "archived and completed skipped",
			goals: []types.Goal{
				goalAt("a", types.GoalStatusArchived, base),
				goalAt("b", types.GoalStatusCompleted, base.Add(time.Minute)),
				goalAt("c", types.GoalStatusActive, base.Add(time.Hour)),
			},
			wantFocus: "c",
		},
		{
			name: "all ineligible clears focus",
			goals: []types.Goal{
				goalAt("a", types.GoalStatusArchived, base),
			},
			wantFocus: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals, focusID, mode := resolveFocus(tt.goals, types.FocusModeAuto, "")
			assert.Equal(t, tt.wantFocus, focusID)
			assert.Equal(t, types.FocusModeAuto, mode)
			assertSingleFocus(t, goals, tt.wantFocus)
		})
	}
}

func TestResolveFocusManual(t *testing.T) {
	base := testDay

	t.Run("eligible pin holds", func(t *testing.T) {
		goals := []types.Goal{
			goalAt("a", types.GoalStatusActive, base),
			goalAt("b", types.GoalStatusActive, base.Add(time.Hour)),
		}
		goals, focusID, mode := resolveFocus(goals, types.FocusModeManual, "b")
		assert.Equal(t, "b", focusID)
		assert.Equal(t, types.FocusModeManual, mode)
		assertSingleFocus(t, goals, "b")
	})

	t.Run("ineligible pin degrades to auto", func(t *testing.T) {
		goals := []types.Goal{
			goalAt("a", types.GoalStatusActive, base),
			goalAt("b", types.GoalStatusCompleted, base.Add(time.Hour)),
		}
		goals, focusID, mode := resolveFocus(goals, types.FocusModeManual, "b")
		assert.Equal(t, "a", focusID)
		assert.Equal(t, types.FocusModeAuto, mode)
		assertSingleFocus(t, goals, "a")
	})

	t.Run("unknown pin degrades to auto", func(t *testing.T) {
		goals := []types.Goal{
			goalAt("a", types.GoalStatusActive, base),
		}
		_, focusID, mode := resolveFocus(goals, types.FocusModeManual, "ghost")
		assert.Equal(t, "a", focusID)
		assert.Equal(t, types.FocusModeAuto, mode)
	})

	t.Run("unrecognized mode treated as auto", func(t *testing.T) {
		goals := []types.Goal{
			goalAt("a", types.GoalStatusActive, base),
		}
		_, focusID, mode := resolveFocus(goals, "whatever", "")
		assert.Equal(t, "a", focusID)
		assert.Equal(t, types.FocusModeAuto, mode)
	})
}

// assertSingleFocus checks that at most one goal carries the focus flag and
// that it matches the expected ID.
func assertSingleFocus(t *testing.T, goals []types.Goal, wantID string) {
	t.Helper()
	flagged := 0
	for _, g := range goals {
		if g.IsFocusGoal {
			flagged++
			assert.Equal(t, wantID, g.ID)
		}
	}
	if wantID == "" {
		assert.Zero(t, flagged)
	} else {
		assert.Equal(t, 1, flagged)
	}
}

func TestAddGoalAutoFocus(t *testing.T) {
	s, _, clock := newTestStore(t)

	first := s.AddGoal(GoalParams{Title: "First"})
	clock.Advance(time.Hour)
	s.AddGoal(GoalParams{Title: "Second"})

	state := s.State()
	assert.Equal(t, first.ID, state.FocusGoalID)
	assertSingleFocus(t, state.Goals, first.ID)
}

func TestCompletingFocusGoalMovesFocus(t *testing.T) {
	s, _, clock := newTestStore(t)

	first := s.AddGoal(GoalParams{Title: "First"})
	clock.Advance(time.Hour)
	second := s.AddGoal(GoalParams{Title: "Second"})

	status := types.GoalStatusCompleted
	_, ok := s.UpdateGoal(first.ID, GoalUpdate{Status: &status})
	require.True(t, ok)

	state := s.State()
	assert.Equal(t, second.ID, state.FocusGoalID)
	assertSingleFocus(t, state.Goals, second.ID)
}

func TestSetFocusGoalManualPin(t *testing.T) {
	s, _, clock := newTestStore(t)

	s.AddGoal(GoalParams{Title: "First"})
	clock.Advance(time.Hour)
	second := s.AddGoal(GoalParams{Title: "Second"})

	s.SetFocusGoal(second.ID)
	state := s.State()
	assert.Equal(t, second.ID, state.FocusGoalID)
	assert.Equal(t, types.FocusModeManual, state.FocusMode)
	assertSingleFocus(t, state.Goals, second.ID)
}

func TestPinnedGoalDegradesWhenArchived(t *testing.T) {
	s, _, clock := newTestStore(t)

	first := s.AddGoal(GoalParams{Title: "First"})
	clock.Advance(time.Hour)
	second := s.AddGoal(GoalParams{Title: "Second"})
	s.SetFocusGoal(second.ID)

	status := types.GoalStatusArchived
	_, ok := s.UpdateGoal(second.ID, GoalUpdate{Status: &status})
	require.True(t, ok)

	state := s.State()
	assert.Equal(t, first.ID, state.FocusGoalID)
	assert.Equal(t, types.FocusModeAuto, state.FocusMode)
	assertSingleFocus(t, state.Goals, first.ID)
}

func TestClearFocusPin(t *testing.T) {
	s, _, clock := newTestStore(t)

	first := s.AddGoal(GoalParams{Title: "First"})
	clock.Advance(time.Hour)
	second := s.AddGoal(GoalParams{Title: "Second"})
	s.SetFocusGoal(second.ID)

	s.SetFocusGoal("")

	state := s.State()
	assert.Equal(t, first.ID, state.FocusGoalID)
	assert.Equal(t, types.FocusModeAuto, state.FocusMode)
}

func TestDeleteFocusGoalRecomputes(t *testing.T) {
	s, _, clock := newTestStore(t)

	first := s.AddGoal(GoalParams{Title: "First"})
	clock.Advance(time.Hour)
	second := s.AddGoal(GoalParams{Title: "Second"})

	require.True(t, s.DeleteGoal(first.ID))

	state := s.State()
	assert.Equal(t, second.ID, state.FocusGoalID)
	assertSingleFocus(t, state.Goals, second.ID)
}
