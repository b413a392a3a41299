package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func TestAddGoalDefaults(t *testing.T) {
	s, _, _ := newTestStore(t)

	goal := s.AddGoal(GoalParams{Title: "Learn Go", LifeArea: "growth"})

	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, types.GoalStatusActive, goal.Status)
	assert.NotNil(t, goal.GoalTaskIDs)
	assert.NotNil(t, goal.HabitIDs)
	assert.True(t, goal.IsFocusGoal, "first active goal takes focus")
	assert.Equal(t, testDay, goal.CreatedAt)
}

func TestUpdateGoalPartialMerge(t *testing.T) {
	s, _, _ := newTestStore(t)
	goal := s.AddGoal(GoalParams{Title: "Old title", Why: "reasons"})

	title := "New title"
	got, ok := s.UpdateGoal(goal.ID, GoalUpdate{Title: &title})
	require.True(t, ok)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "reasons", got.Why, "unset fields untouched")
}

func TestUpdateGoalStatusPersistedAsGiven(t *testing.T) {
	s, _, _ := newTestStore(t)
	goal := s.AddGoal(GoalParams{Title: "Goal"})

	custom := "paused"
	got, ok := s.UpdateGoal(goal.ID, GoalUpdate{Status: &custom})
	require.True(t, ok)
	assert.Equal(t, "paused", got.Status)
	assert.Nil(t, got.CompletedAt)
	assert.True(t, got.IsFocusGoal, "unrecognized statuses stay focus eligible")
}

func TestUpdateGoalUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)

	title := "whatever"
	_, ok := s.UpdateGoal("ghost", GoalUpdate{Title: &title})
	assert.False(t, ok)
}

func TestCompleteGoalSetsTimestamp(t *testing.T) {
	s, _, _ := newTestStore(t)
	goal := s.AddGoal(GoalParams{Title: "Goal"})

	completed := types.GoalStatusCompleted
	got, ok := s.UpdateGoal(goal.ID, GoalUpdate{Status: &completed})
	require.True(t, ok)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, testDay, *got.CompletedAt)
	assert.False(t, got.IsFocusGoal)
}

func TestDeleteGoalCascades(t *testing.T) {
	s, _, _ := newTestStore(t)

	goal := s.AddGoal(GoalParams{Title: "Doomed"})
	other := s.AddGoal(GoalParams{Title: "Survivor"})
	task, ok := s.AddGoalTask(goal.ID, "Owned task", "")
	require.True(t, ok)
	habit := s.AddHabit(HabitParams{Title: "Owned habit", GoalID: goal.ID})
	standalone := s.AddHabit(HabitParams{Title: "Standalone habit"})

	require.True(t, s.DeleteGoal(goal.ID))

	state := s.State()
	_, found := state.GoalByID(goal.ID)
	assert.False(t, found)
	_, found = state.GoalTaskByID(task.ID)
	assert.False(t, found, "owned tasks deleted with the goal")
	_, found = state.HabitByID(habit.ID)
	assert.False(t, found, "owned habits deleted with the goal")
	_, found = state.HabitByID(standalone.ID)
	assert.True(t, found, "unrelated habits survive")

	// No surviving goal may still reference the cascaded habit.
	for _, g := range state.Goals {
		assert.NotContains(t, g.HabitIDs, habit.ID)
	}
	_, found = state.GoalByID(other.ID)
	assert.True(t, found)
}

func TestDeleteGoalLeavesEarlierSnapshotsIntact(t *testing.T) {
	s, _, _ := newTestStore(t)

	doomed := s.AddGoal(GoalParams{Title: "Doomed"})
	s.AddGoal(GoalParams{Title: "Kept"})
	s.AddGoalTask(doomed.ID, "Owned task", "")
	s.AddHabit(HabitParams{Title: "Owned habit", GoalID: doomed.ID})

	before := s.State()
	require.True(t, s.DeleteGoal(doomed.ID))

	require.Len(t, before.Goals, 2)
	assert.Equal(t, "Doomed", before.Goals[0].Title)
	assert.Equal(t, "Kept", before.Goals[1].Title)
	require.Len(t, before.GoalTasks, 1)
	require.Len(t, before.Habits, 1)

	after := s.State()
	require.Len(t, after.Goals, 1)
	assert.Equal(t, "Kept", after.Goals[0].Title)
	assert.Empty(t, after.GoalTasks)
	assert.Empty(t, after.Habits)
}

func TestDeleteGoalUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.False(t, s.DeleteGoal("ghost"))
}
