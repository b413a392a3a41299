package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// HabitParams holds the fields for creating a habit. When GoalID is set the
// habit inherits the goal's life area and aspiration and is added to the
// goal's habit membership list.
type HabitParams struct {
	Title        string
	Frequency    string
	WeekDays     []int
	TrackingType string
	TargetValue  float64
	Unit         string
	GoalID       string
}

// HabitUpdate holds a partial-field merge for a habit.
type HabitUpdate struct {
	Title        *string
	Frequency    *string
	WeekDays     *[]int
	TrackingType *string
	TargetValue  *float64
	Unit         *string
}

// AddHabit creates a habit. A habit referencing a goal that does not exist
// is created standalone; the reference is simply not recorded.
func (s *Store) AddHabit(p HabitParams) types.Habit {
	s.mu.Lock()
	frequency := p.Frequency
	if frequency == "" {
		frequency = types.FrequencyDaily
	}
	trackingType := p.TrackingType
	if trackingType == "" {
		trackingType = types.TrackingCheckbox
	}
	habit := types.Habit{
		ID:             s.newID(),
		Title:          p.Title,
		Frequency:      frequency,
		WeekDays:       p.WeekDays,
		TrackingType:   trackingType,
		TargetValue:    p.TargetValue,
		Unit:           p.Unit,
		CompletedDates: []string{},
		CreatedAt:      s.now(),
	}
	if goal, ok := s.state.GoalByID(p.GoalID); ok {
		habit.GoalID = goal.ID
		habit.LifeArea = goal.LifeArea
		habit.AspirationID = goal.AspirationID
		goal.HabitIDs = append(goal.HabitIDs, habit.ID)
	}
	s.state.Habits = append(s.state.Habits, habit)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Habit added")
	return habit
}

// UpdateHabit merges the given fields into the habit. Returns false if the
// habit does not exist.
func (s *Store) UpdateHabit(id string, u HabitUpdate) (types.Habit, bool) {
	s.mu.Lock()
	habit, ok := s.state.HabitByID(id)
	if !ok {
		s.mu.Unlock()
		return types.Habit{}, false
	}
	if u.Title != nil {
		habit.Title = *u.Title
	}
	if u.Frequency != nil {
		habit.Frequency = *u.Frequency
	}
	if u.WeekDays != nil {
		habit.WeekDays = *u.WeekDays
	}
	if u.TrackingType != nil {
		habit.TrackingType = *u.TrackingType
	}
	if u.TargetValue != nil {
		habit.TargetValue = *u.TargetValue
	}
	if u.Unit != nil {
		habit.Unit = *u.Unit
	}
	updated := *habit
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Habit updated")
	return updated, true
}

// ToggleHabitDate flips the habit's completion for the given ISO date and
// awards or revokes the habit XP in the same transition. For numeric and
// time tracking a non-nil value is recorded on completion; the recorded
// value is dropped on un-completion. Returns false if the habit does not
// exist.
func (s *Store) ToggleHabitDate(id, date string, value *float64) (types.Habit, bool) {
	s.mu.Lock()
	habit, ok := s.state.HabitByID(id)
	if !ok {
		s.mu.Unlock()
		return types.Habit{}, false
	}

	if habit.CompletedOn(date) {
		dates := make([]string, 0, len(habit.CompletedDates)-1)
		for _, d := range habit.CompletedDates {
			if d != date {
				dates = append(dates, d)
			}
		}
		habit.CompletedDates = dates
		delete(habit.TrackingData, date)
		s.state.Progress = applyXP(s.state.Progress, -XPHabitComplete)
	} else {
		habit.CompletedDates = append(habit.CompletedDates, date)
		if value != nil {
			if habit.TrackingData == nil {
				habit.TrackingData = map[string]float64{}
			}
			habit.TrackingData[date] = *value
		}
		s.state.Progress = applyXP(s.state.Progress, XPHabitComplete)
	}
	updated := *habit
	data := s.encode()
	s.mu.Unlock()

	msg := "Habit checked"
	if !updated.CompletedOn(date) {
		msg = "Habit unchecked"
	}
	s.commit(data, msg)
	return updated, true
}

// DeleteHabit removes the habit and pulls its ID out of every goal's habit
// membership list. Returns false if the habit does not exist.
func (s *Store) DeleteHabit(id string) bool {
	s.mu.Lock()
	if _, ok := s.state.HabitByID(id); !ok {
		s.mu.Unlock()
		return false
	}
	habits := make([]types.Habit, 0, len(s.state.Habits)-1)
	for _, h := range s.state.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	s.state.Habits = habits
	s.removeHabitRef(id)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Habit deleted")
	return true
}

// removeHabitRef strips the habit ID from every goal's HabitIDs. Caller must
// hold the lock.
func (s *Store) removeHabitRef(habitID string) {
	for i := range s.state.Goals {
		s.state.Goals[i].HabitIDs = removeString(s.state.Goals[i].HabitIDs, habitID)
	}
}
