package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// HabitStatus annotates a habit with its completion state for today.
type HabitStatus struct {
	types.Habit
	CompletedToday bool
	TodayValue     *float64
}

// TodaysHabits returns the habits scheduled for today: daily habits plus
// weekly habits whose configured weekdays include today.
func (s *Store) TodaysHabits() []HabitStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	today := dateOnly(now)
	result := []HabitStatus{}
	for _, h := range s.state.Habits {
		if !h.DueOn(now.Weekday()) {
			continue
		}
		status := HabitStatus{
			Habit:          h,
			CompletedToday: h.CompletedOn(today),
		}
		if v, ok := h.ValueOn(today); ok {
			status.TodayValue = &v
		}
		result = append(result, status)
	}
	return result
}

// TodaysGoalTasks returns tasks relevant today: tasks with no due date, due
// today, or overdue and not yet completed. Date-only strings compare
// lexically.
func (s *Store) TodaysGoalTasks() []types.GoalTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := dateOnly(s.now())
	result := []types.GoalTask{}
	for _, t := range s.state.GoalTasks {
		switch {
		case t.DueDate == "":
			result = append(result, t)
		case t.DueDate == today:
			result = append(result, t)
		case t.DueDate < today && !t.Completed:
			result = append(result, t)
		}
	}
	return result
}

// ActiveGoals returns the goals that are neither archived nor completed.
func (s *Store) ActiveGoals() []types.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []types.Goal{}
	for _, g := range s.state.Goals {
		if g.FocusEligible() {
			result = append(result, g)
		}
	}
	return result
}

// HabitStreak counts consecutive completed calendar days walking backward
// from today. The streak is zero when today is not completed: only an
// unbroken run ending today counts.
func (s *Store) HabitStreak(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	habit, ok := s.state.HabitByID(id)
	if !ok {
		return 0
	}
	streak := 0
	day := s.now()
	for habit.CompletedOn(dateOnly(day)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// GoalProgress returns the goal's completion percentage: completed linked
// tasks plus habits completed today, over all linked tasks and habits. A
// goal with no linked tasks or habits has progress zero. Returns zero for an
// unknown goal.
func (s *Store) GoalProgress(id string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.state.GoalByID(id)
	if !ok {
		return 0
	}
	today := dateOnly(s.now())

	total, done := 0, 0
	for _, taskID := range goal.GoalTaskIDs {
		task, ok := s.state.GoalTaskByID(taskID)
		if !ok {
			continue
		}
		total++
		if task.Completed {
			done++
		}
	}
	for _, habitID := range goal.HabitIDs {
		habit, ok := s.state.HabitByID(habitID)
		if !ok {
			continue
		}
		total++
		if habit.CompletedOn(today) {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
