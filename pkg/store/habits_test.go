package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func TestAddHabitDefaults(t *testing.T) {
	s, _, _ := newTestStore(t)

	habit := s.AddHabit(HabitParams{Title: "Stretch"})

	assert.Equal(t, types.FrequencyDaily, habit.Frequency)
	assert.Equal(t, types.TrackingCheckbox, habit.TrackingType)
	assert.NotNil(t, habit.CompletedDates)
	assert.Empty(t, habit.GoalID)
}

func TestAddHabitInheritsFromGoal(t *testing.T) {
	s, _, _ := newTestStore(t)
	goal := s.AddGoal(GoalParams{Title: "Get fit", LifeArea: "health", AspirationID: "asp-1"})

	habit := s.AddHabit(HabitParams{Title: "Run", GoalID: goal.ID})

	assert.Equal(t, goal.ID, habit.GoalID)
	assert.Equal(t, "health", habit.LifeArea)
	assert.Equal(t, "asp-1", habit.AspirationID)

	state := s.State()
	updated, ok := state.GoalByID(goal.ID)
	require.True(t, ok)
	assert.Contains(t, updated.HabitIDs, habit.ID)
}

func TestAddHabitUnknownGoalStandalone(t *testing.T) {
	s, _, _ := newTestStore(t)

	habit := s.AddHabit(HabitParams{Title: "Run", GoalID: "ghost"})

	assert.Empty(t, habit.GoalID, "dangling reference not recorded")
}

func TestToggleHabitDateRecordsValue(t *testing.T) {
	s, _, _ := newTestStore(t)
	habit := s.AddHabit(HabitParams{
		Title:        "Read",
		TrackingType: types.TrackingNumeric,
		TargetValue:  30,
		Unit:         "pages",
	})

	value := 42.0
	got, ok := s.ToggleHabitDate(habit.ID, "2026-03-15", &value)
	require.True(t, ok)
	assert.True(t, got.CompletedOn("2026-03-15"))
	v, ok := got.ValueOn("2026-03-15")
	require.True(t, ok)
	assert.Equal(t, 42.0, v)

	// Un-completing drops the recorded value with the date.
	got, ok = s.ToggleHabitDate(habit.ID, "2026-03-15", nil)
	require.True(t, ok)
	assert.False(t, got.CompletedOn("2026-03-15"))
	_, ok = got.ValueOn("2026-03-15")
	assert.False(t, ok)
}

func TestToggleHabitDateUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)
	_, ok := s.ToggleHabitDate("ghost", "2026-03-15", nil)
	assert.False(t, ok)
}

func TestDeleteHabitRemovesGoalRef(t *testing.T) {
	s, _, _ := newTestStore(t)
	goal := s.AddGoal(GoalParams{Title: "Goal"})
	habit := s.AddHabit(HabitParams{Title: "Run", GoalID: goal.ID})

	require.True(t, s.DeleteHabit(habit.ID))

	state := s.State()
	updated, ok := state.GoalByID(goal.ID)
	require.True(t, ok)
	assert.NotContains(t, updated.HabitIDs, habit.ID)
}

func TestUpdateHabitPartialMerge(t *testing.T) {
	s, _, _ := newTestStore(t)
	habit := s.AddHabit(HabitParams{Title: "Run"})

	weekly := types.FrequencyWeekly
	days := []int{1, 3, 5}
	got, ok := s.UpdateHabit(habit.ID, HabitUpdate{Frequency: &weekly, WeekDays: &days})
	require.True(t, ok)
	assert.Equal(t, types.FrequencyWeekly, got.Frequency)
	assert.Equal(t, []int{1, 3, 5}, got.WeekDays)
	assert.Equal(t, "Run", got.Title)
}
